package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"marketplace-client/internal/app"
	"marketplace-client/internal/shipper"
	"marketplace-client/internal/utils"
)

func init() {
	simple("shipper-stats", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		s, err := a.Shipper.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deliveries: %d total, %d completed, %d active, %d cancelled\n",
			s.TotalDeliveries, s.CompletedDeliveries, s.ActiveDeliveries, s.CancelledDeliveries)
		fmt.Fprintf(out, "Earnings: %s, rating %.1f\n", utils.FormatVND(s.TotalEarnings), s.Rating)
		return nil
	})

	simple("earnings", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		e, err := a.Shipper.Earnings(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Today %s, week %s, month %s, total %s\n",
			utils.FormatVND(e.Today), utils.FormatVND(e.Week), utils.FormatVND(e.Month), utils.FormatVND(e.Total))
		return nil
	})

	simple("available-orders", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		list, err := a.Shipper.AvailableOrders(ctx)
		if err != nil {
			return err
		}
		printDeliveries(out, list)
		return nil
	})

	simple("deliveries", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		list, err := a.Shipper.MyDeliveries(ctx)
		if err != nil {
			return err
		}
		printDeliveries(out, list)
		return nil
	})

	simple("accept", "<orderId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		d, err := a.Shipper.AcceptOrder(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Accepted %s, pick up at %s\n", id, d.PickupAddress)
		return nil
	})

	register("delivery-status", "<orderId> <assigned|picked_up|shipping> [-note N]", func(fs *flag.FlagSet) handler {
		note := fs.String("note", "", "note for the buyer")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}
			status, err := arg(args, 1)
			if err != nil {
				return err
			}
			return a.Shipper.UpdateStatus(ctx, id, shipper.DeliveryStatus(status), *note)
		}
	})

	simple("deliver", "<orderId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		if err := a.Shipper.CompleteDelivery(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(out, "Order %s delivered\n", id)
		return nil
	})

	register("delivery-cancel", "<orderId> [-reason R]", func(fs *flag.FlagSet) handler {
		reason := fs.String("reason", "", "why the delivery is dropped")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}
			return a.Shipper.CancelDelivery(ctx, id, *reason)
		}
	})
}

func printDeliveries(out io.Writer, list []shipper.Delivery) {
	if len(list) == 0 {
		fmt.Fprintln(out, "No deliveries")
		return
	}
	table(out, "ORDER\tSTATUS\tFROM\tTO\tFEE", func(w io.Writer) {
		for _, d := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.OrderID, d.Status, d.PickupAddress, d.DeliveryAddress, utils.FormatVND(d.Fee))
		}
	})
}
