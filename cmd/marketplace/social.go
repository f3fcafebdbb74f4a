package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"marketplace-client/internal/app"
	"marketplace-client/internal/chat"
	"marketplace-client/internal/social"
)

func init() {
	simple("shops", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		shops, err := a.Social.FeaturedShops(ctx)
		if err != nil {
			return err
		}
		table(out, "ID\tSHOP\tFOLLOWERS\tLIKES\tFOLLOWING", func(w io.Writer) {
			for _, s := range shops {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%t\n", s.ID, s.Name, s.Followers, s.Likes, s.IsFollowing)
			}
		})
		return nil
	})

	counted := func(name, usage string, call func(social.Repository, context.Context, string) (*social.Counts, error)) {
		simple(name, usage, func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}
			c, err := call(a.Social, ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d followers, %d likes\n", c.Followers, c.Likes)
			return nil
		})
	}
	counted("follow", "<userId>", social.Repository.Follow)
	counted("unfollow", "<userId>", social.Repository.Unfollow)
	counted("like-shop", "<shopId>", social.Repository.LikeShop)
	counted("unlike-shop", "<shopId>", social.Repository.UnlikeShop)

	simple("chats", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		list, err := a.Chat.Conversations(ctx)
		if err != nil {
			return err
		}
		table(out, "ID\tWITH\tUNREAD\tLAST", func(w io.Writer) {
			for _, c := range list {
				last := ""
				if c.LastMessage != nil {
					last = c.LastMessage.Text
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", c.ID, participants(c.Participants), c.UnreadCount, last)
			}
		})
		return nil
	})

	register("chat-start", "<userId> [-product ID]", func(fs *flag.FlagSet) handler {
		productID := fs.String("product", "", "product the conversation is about")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}
			c, err := a.Chat.StartConversation(ctx, chat.StartParams{ParticipantID: id, ProductID: *productID})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Conversation %s\n", c.ID)
			return nil
		}
	})

	simple("messages", "<conversationId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		msgs, err := a.Chat.Messages(ctx, id)
		if err != nil {
			return err
		}
		for _, m := range msgs {
			fmt.Fprintf(out, "[%s] %s: %s\n", m.CreatedAt.Format("01-02 15:04"), m.SenderID, m.Text)
		}
		return a.Chat.MarkAsRead(ctx, id)
	})

	simple("send", "<conversationId> <text...>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		if _, err := a.Chat.SendMessage(ctx, id, strings.Join(args[1:], " ")); err != nil {
			return err
		}
		fmt.Fprintln(out, "Sent")
		return nil
	})
}

func participants(ps []chat.Participant) string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
