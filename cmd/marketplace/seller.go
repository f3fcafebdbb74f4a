package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"marketplace-client/internal/analytics"
	"marketplace-client/internal/app"
	"marketplace-client/internal/banner"
	"marketplace-client/internal/product"
	"marketplace-client/internal/utils"
)

func init() {
	simple("my-products", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		list, err := a.Products.Mine(ctx)
		if err != nil {
			return err
		}
		printProducts(out, list)
		return nil
	})

	register("product-create", "-name N -price P [-stock N] [-category C] [-sizes S,M,L] [-description D] [-images url,...]", func(fs *flag.FlagSet) handler {
		var in product.Input
		stock := fs.Int("stock", 0, "units in stock")
		sizes := fs.String("sizes", "", "comma separated sizes")
		images := fs.String("images", "", "comma separated image urls")
		fs.StringVar(&in.Name, "name", "", "product name")
		fs.Float64Var(&in.Price, "price", 0, "price in dong")
		fs.StringVar(&in.Category, "category", "", "category")
		fs.StringVar(&in.Description, "description", "", "description")
		fs.StringVar(&in.Condition, "condition", "", "new or used")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
			in.Stock = utils.Ptr(*stock)
			in.Sizes = splitList(*sizes)
			in.Images = splitList(*images)

			p, err := a.Products.Create(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Product %s created\n", p.ID)
			return nil
		}
	})

	register("product-update", "<productId> [-name] [-price] [-stock]", func(fs *flag.FlagSet) handler {
		name := fs.String("name", "", "product name")
		price := fs.Float64("price", 0, "price in dong")
		stock := fs.Int("stock", 0, "units in stock")

		return func(ctx context.Context, a *app.App, fs *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}

			var in product.Input
			fs.Visit(func(f *flag.Flag) {
				switch f.Name {
				case "name":
					in.Name = *name
				case "price":
					in.Price = *price
				case "stock":
					in.Stock = utils.Ptr(*stock)
				}
			})

			p, err := a.Products.Update(ctx, id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Product %s updated\n", p.ID)
			return nil
		}
	})

	simple("product-delete", "<productId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		if err := a.Products.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(out, "Product %s deleted\n", id)
		return nil
	})

	register("analytics", "[-period day|week|month]", func(fs *flag.FlagSet) handler {
		period := fs.String("period", string(analytics.PeriodWeek), "day, week or month")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
			s, err := a.Analytics.Seller(ctx, analytics.Period(*period))
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Revenue (%s): %s\n", s.Period, utils.FormatVND(s.TotalRevenue))
			fmt.Fprintf(out, "Orders: %d (%d pending), average %s\n",
				s.TotalOrders, s.PendingOrders, utils.FormatVND(s.AverageOrderValue()))
			fmt.Fprintf(out, "Products: %d, followers: %d, rating: %.1f\n", s.TotalProducts, s.Followers, s.AverageRating)
			if len(s.TopProducts) > 0 {
				table(out, "TOP PRODUCT\tSOLD\tREVENUE", func(w io.Writer) {
					for _, p := range s.TopProducts {
						fmt.Fprintf(w, "%s\t%d\t%s\n", p.Name, p.Sold, utils.FormatVND(p.Revenue))
					}
				})
			}
			return nil
		}
	})

	register("banners", "[-all|-mine|-pending]", func(fs *flag.FlagSet) handler {
		all := fs.Bool("all", false, "every banner (admin)")
		mine := fs.Bool("mine", false, "my banners")
		pending := fs.Bool("pending", false, "banners awaiting review (admin)")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
			list := a.Banners.Active
			switch {
			case *all:
				list = a.Banners.All
			case *mine:
				list = a.Banners.Mine
			case *pending:
				list = a.Banners.Pending
			}

			banners, err := list(ctx)
			if err != nil {
				return err
			}
			table(out, "ID\tSTATUS\tTITLE\tLINK", func(w io.Writer) {
				for _, b := range banners {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.ID, b.Status, b.Title, b.Link)
				}
			})
			return nil
		}
	})

	register("banner-create", "-title T -image URL [-link URL]", func(fs *flag.FlagSet) handler {
		var p banner.CreateParams
		fs.StringVar(&p.Title, "title", "", "banner title")
		fs.StringVar(&p.ImageURL, "image", "", "image url")
		fs.StringVar(&p.Link, "link", "", "target link")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
			b, err := a.Banners.Create(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Banner %s submitted (%s)\n", b.ID, b.Status)
			return nil
		}
	})

	simple("banner-approve", "<bannerId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		return a.Banners.Approve(ctx, id)
	})

	register("banner-reject", "<bannerId> -reason R", func(fs *flag.FlagSet) handler {
		reason := fs.String("reason", "", "why the banner is rejected")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}
			return a.Banners.Reject(ctx, id, *reason)
		}
	})

	simple("banner-delete", "<bannerId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		return a.Banners.Delete(ctx, id)
	})
}
