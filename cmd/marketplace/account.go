package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"marketplace-client/internal/app"
	"marketplace-client/internal/user"
)

func init() {
	register("register", "-name N -email E -password P [-phone] [-role buyer|seller|shipper]", func(fs *flag.FlagSet) handler {
		var p user.RegisterParams
		var role string
		fs.StringVar(&p.Name, "name", "", "display name")
		fs.StringVar(&p.Email, "email", "", "email")
		fs.StringVar(&p.Password, "password", "", "password")
		fs.StringVar(&p.Phone, "phone", "", "phone number")
		fs.StringVar(&role, "role", "", "account role")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
			p.Role = user.Role(role)
			u, err := a.Users.Register(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Welcome, %s (%s)\n", u.Name, u.Role)
			return nil
		}
	})

	register("login", "-email E -password P", func(fs *flag.FlagSet) handler {
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "password")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
			u, err := a.Users.Login(ctx, *email, *password)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Logged in as %s <%s>\n", displayName(u), u.Email)
			return nil
		}
	})

	simple("logout", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		if err := a.Users.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Logged out")
		return nil
	})

	simple("me", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		u, err := a.Users.Me(ctx)
		if err != nil {
			return err
		}
		printUser(out, u)
		return nil
	})

	register("profile", "[-name] [-phone] [-address] [-avatar]", func(fs *flag.FlagSet) handler {
		name := fs.String("name", "", "display name")
		phone := fs.String("phone", "", "phone number")
		address := fs.String("address", "", "default shipping address")
		avatar := fs.String("avatar", "", "avatar url")

		return func(ctx context.Context, a *app.App, fs *flag.FlagSet, _ []string, out io.Writer) error {
			var p user.UpdateProfileParams
			fs.Visit(func(f *flag.Flag) {
				switch f.Name {
				case "name":
					p.Name = name
				case "phone":
					p.Phone = phone
				case "address":
					p.Address = address
				case "avatar":
					p.Avatar = avatar
				}
			})

			u, err := a.Users.UpdateProfile(ctx, p)
			if err != nil {
				return err
			}
			printUser(out, u)
			return nil
		}
	})
}

func displayName(u *user.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

func printUser(out io.Writer, u *user.User) {
	fmt.Fprintf(out, "%s <%s>\n", displayName(u), u.Email)
	fmt.Fprintf(out, "  role:    %s\n", u.Role)
	if u.Phone != "" {
		fmt.Fprintf(out, "  phone:   %s\n", u.Phone)
	}
	if u.Address != "" {
		fmt.Fprintf(out, "  address: %s\n", u.Address)
	}
}
