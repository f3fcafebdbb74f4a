package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"marketplace-client/internal/app"
	"marketplace-client/internal/cart"
	"marketplace-client/internal/product"
	"marketplace-client/internal/review"
	"marketplace-client/internal/utils"
)

func init() {
	register("products", "[-category C] [-search S]", func(fs *flag.FlagSet) handler {
		var filter product.ListFilter
		fs.StringVar(&filter.Category, "category", "", "category filter")
		fs.StringVar(&filter.Search, "search", "", "search text")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
			list, err := a.Products.List(ctx, filter)
			if err != nil {
				return err
			}
			printProducts(out, list)
			return nil
		}
	})

	simple("featured", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		list, err := a.Products.Featured(ctx)
		if err != nil {
			return err
		}
		printProducts(out, list)
		return nil
	})

	simple("shop-products", "<shopId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		list, err := a.Products.ByShop(ctx, id)
		if err != nil {
			return err
		}
		printProducts(out, list)
		return nil
	})

	simple("product", "<productId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		p, err := a.Products.Get(ctx, id)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s  %s\n", p.Name, utils.FormatVND(p.Price))
		if p.Shop != nil {
			fmt.Fprintf(out, "  shop:  %s\n", p.Shop.Name)
		}
		if len(p.Sizes) > 0 {
			fmt.Fprintf(out, "  sizes: %v\n", p.Sizes)
		}
		fmt.Fprintf(out, "  stock: %d\n", p.Stock)
		if p.ReviewCount > 0 {
			fmt.Fprintf(out, "  rating: %.1f (%d reviews)\n", p.Rating, p.ReviewCount)
		}
		if p.Description != "" {
			fmt.Fprintf(out, "\n%s\n", p.Description)
		}
		return nil
	})

	simple("cart", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		if _, err := a.Cart.Load(ctx); err != nil {
			return err
		}
		printCart(out, a.Cart.Store())
		return nil
	})

	register("cart-add", "<productId> [-qty N] [-size S]", func(fs *flag.FlagSet) handler {
		qty := fs.Int("qty", 1, "quantity")
		size := fs.String("size", "", "size variant")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}
			p, err := a.Products.Get(ctx, id)
			if err != nil {
				return err
			}
			if _, err := a.Cart.Load(ctx); err != nil {
				return err
			}
			if err := a.Cart.Add(ctx, *p, *qty, *size); err != nil {
				return err
			}
			printCart(out, a.Cart.Store())
			return nil
		}
	})

	register("cart-update", "<productId> <qty> [-size S]", func(fs *flag.FlagSet) handler {
		size := fs.String("size", "", "size variant")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}
			raw, err := arg(args, 1)
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(raw)
			if err != nil {
				return errUsage
			}
			if _, err := a.Cart.Load(ctx); err != nil {
				return err
			}
			if err := a.Cart.UpdateQuantity(ctx, id, *size, qty); err != nil {
				return err
			}
			printCart(out, a.Cart.Store())
			return nil
		}
	})

	register("cart-remove", "<productId> [-size S]", func(fs *flag.FlagSet) handler {
		size := fs.String("size", "", "size variant")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}
			if _, err := a.Cart.Load(ctx); err != nil {
				return err
			}
			if err := a.Cart.Remove(ctx, id, *size); err != nil {
				return err
			}
			printCart(out, a.Cart.Store())
			return nil
		}
	})

	simple("cart-clear", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		if err := a.Cart.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Cart cleared")
		return nil
	})

	simple("wishlist", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		list, err := a.Wishlist.Load(ctx)
		if err != nil {
			return err
		}
		printProducts(out, list)
		return nil
	})

	simple("favorite", "<productId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		p, err := a.Products.Get(ctx, id)
		if err != nil {
			return err
		}
		if _, err := a.Wishlist.Load(ctx); err != nil {
			return err
		}
		on, err := a.Wishlist.Toggle(ctx, *p)
		if err != nil {
			return err
		}
		if on {
			fmt.Fprintf(out, "Added %s to favorites\n", p.Name)
		} else {
			fmt.Fprintf(out, "Removed %s from favorites\n", p.Name)
		}
		return nil
	})

	simple("favorite-check", "<productId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		on, err := a.Wishlist.IsFavorite(ctx, id)
		if err != nil {
			return err
		}
		if on {
			fmt.Fprintf(out, "%s is in your favorites\n", id)
		} else {
			fmt.Fprintf(out, "%s is not in your favorites\n", id)
		}
		return nil
	})

	register("reviews", "<productId> [-page N] [-limit N]", func(fs *flag.FlagSet) handler {
		page := fs.Int("page", review.DefaultPage, "page number")
		limit := fs.Int("limit", review.DefaultLimit, "reviews per page")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}
			p, err := a.Reviews.ListByProduct(ctx, id, *page, *limit)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Average %.1f, %d reviews (page %d/%d)\n",
				p.AverageRating, p.Pagination.Total, p.Pagination.Page, p.Pagination.Pages)
			table(out, "RATING\tBY\tCOMMENT", func(w io.Writer) {
				for _, r := range p.Reviews {
					fmt.Fprintf(w, "%d\t%s\t%s\n", r.Rating, r.User.Name, r.Comment)
				}
			})
			return nil
		}
	})

	register("review", "<productId> -rating 1..5 [-comment C] [-order ID]", func(fs *flag.FlagSet) handler {
		var p review.CreateParams
		fs.IntVar(&p.Rating, "rating", 0, "rating from 1 to 5")
		fs.StringVar(&p.Comment, "comment", "", "comment")
		fs.StringVar(&p.OrderID, "order", "", "order the product came from")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}
			p.ProductID = id
			r, err := a.Reviews.Create(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Review %s posted\n", r.ID)
			return nil
		}
	})

	register("review-update", "<reviewId> [-rating 1..5] [-comment C]", func(fs *flag.FlagSet) handler {
		var p review.UpdateParams
		fs.IntVar(&p.Rating, "rating", 0, "rating from 1 to 5")
		fs.StringVar(&p.Comment, "comment", "", "comment")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}
			r, err := a.Reviews.Update(ctx, id, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Review %s updated (%d/5)\n", r.ID, r.Rating)
			return nil
		}
	})

	simple("review-delete", "<reviewId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		if err := a.Reviews.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(out, "Review %s deleted\n", id)
		return nil
	})
}

func printProducts(out io.Writer, list []product.Product) {
	if len(list) == 0 {
		fmt.Fprintln(out, "No products")
		return
	}
	table(out, "ID\tNAME\tPRICE\tSTOCK", func(w io.Writer) {
		for _, p := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", p.ID, p.Name, utils.FormatVND(p.Price), p.Stock)
		}
	})
}

func printCart(out io.Writer, s *cart.Store) {
	items := s.Items()
	if len(items) == 0 {
		fmt.Fprintln(out, "Cart is empty")
		return
	}
	table(out, "PRODUCT\tSIZE\tQTY\tSUBTOTAL", func(w io.Writer) {
		for _, it := range items {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", it.Product.Name, it.Size, it.Quantity, utils.FormatVND(it.Subtotal()))
		}
	})
	fmt.Fprintf(out, "Total: %s (%d items)\n", utils.FormatVND(s.Total()), s.Count())
}
