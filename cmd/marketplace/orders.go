package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"marketplace-client/internal/app"
	"marketplace-client/internal/order"
	"marketplace-client/internal/payment"
	"marketplace-client/internal/utils"
)

const (
	payMomo = "momo"
	payCOD  = "cod"
)

func init() {
	register("checkout", "-address A [-payment momo|cod] [-note N] [-wait]", func(fs *flag.FlagSet) handler {
		var p order.CheckoutParams
		fs.StringVar(&p.ShippingAddress, "address", "", "shipping address")
		fs.StringVar(&p.PaymentMethod, "payment", payCOD, "payment method: momo or cod")
		fs.StringVar(&p.Note, "note", "", "note for the seller")
		wait := fs.Bool("wait", false, "wait for the MoMo payment to settle")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
			if p.PaymentMethod != payMomo && p.PaymentMethod != payCOD {
				return errUsage
			}
			if _, err := a.Cart.Load(ctx); err != nil {
				return err
			}

			o, err := a.Orders.Checkout(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Order %s placed, total %s\n", o.ID, utils.FormatVND(o.Total))

			if p.PaymentMethod == payCOD {
				printSteps(out, payment.MethodCOD, payment.VarsFor(payment.MomoPayment{OrderID: o.ID, Amount: o.Total}))
				return nil
			}
			return pay(ctx, a, out, payment.MomoParams{OrderID: o.ID, Amount: o.Total}, *wait)
		}
	})

	register("pay", "<orderId> <amount> [-wait]", func(fs *flag.FlagSet) handler {
		wait := fs.Bool("wait", false, "wait for the payment to settle")

		return func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
			id, err := arg(args, 0)
			if err != nil {
				return err
			}
			raw, err := arg(args, 1)
			if err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return errUsage
			}
			return pay(ctx, a, out, payment.MomoParams{OrderID: id, Amount: amount}, *wait)
		}
	})

	simple("payment-status", "<orderId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		st, err := a.Payments.Status(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Payment for %s: %s\n", id, st.Status)
		return nil
	})

	simple("orders", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		list, err := a.Orders.LoadPurchases(ctx)
		if err != nil {
			return err
		}
		printOrders(out, list)
		return nil
	})

	simple("sales", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		records, err := a.OrderAPI.MySales(ctx)
		if err != nil {
			return err
		}
		printOrders(out, order.ToShadows(records))
		return nil
	})

	simple("order", "<orderId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		rec, err := a.OrderAPI.Get(ctx, id)
		if err != nil {
			return err
		}

		o := order.ToShadow(*rec)
		fmt.Fprintf(out, "Order %s  %s  %s\n", o.ID, o.Status, utils.FormatVND(o.Total))
		if rec.ShippingAddress != "" {
			fmt.Fprintf(out, "  ship to: %s\n", rec.ShippingAddress)
		}
		table(out, "PRODUCT\tSIZE\tQTY\tSUBTOTAL", func(w io.Writer) {
			for _, it := range o.Items {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", it.Product.Name, it.Size, it.Quantity, utils.FormatVND(it.Subtotal()))
			}
		})
		return nil
	})

	simple("order-approve", "<orderId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		if err := a.Orders.Approve(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(out, "Order %s approved\n", id)
		return nil
	})

	simple("order-cancel", "<orderId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		if err := a.Orders.Cancel(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(out, "Order %s cancelled\n", id)
		return nil
	})

	simple("notifications", "", func(ctx context.Context, a *app.App, _ *flag.FlagSet, _ []string, out io.Writer) error {
		list, err := a.OrderAPI.Notifications(ctx)
		if err != nil {
			return err
		}
		table(out, "ID\tREAD\tTITLE\tMESSAGE", func(w io.Writer) {
			for _, n := range list {
				fmt.Fprintf(w, "%s\t%t\t%s\t%s\n", n.ID, n.Read, n.Title, n.Message)
			}
		})
		return nil
	})

	simple("notification-read", "<notificationId>", func(ctx context.Context, a *app.App, _ *flag.FlagSet, args []string, out io.Writer) error {
		id, err := arg(args, 0)
		if err != nil {
			return err
		}
		return a.OrderAPI.MarkNotificationRead(ctx, id)
	})
}

func pay(ctx context.Context, a *app.App, out io.Writer, params payment.MomoParams, wait bool) error {
	p, err := a.Payments.Pay(ctx, params)
	if err != nil {
		return err
	}

	method := payment.MethodMomoApp
	if p.Deeplink == "" && p.QRCodeURL != "" {
		method = payment.MethodMomoQR
	}
	printSteps(out, method, payment.VarsFor(*p))

	if !wait {
		return nil
	}
	fmt.Fprintln(out, "Waiting for MoMo to confirm...")
	st, err := a.Payments.AwaitStatus(ctx, p.OrderID)
	if err != nil {
		return err
	}
	if !st.Succeeded() {
		return fmt.Errorf("payment %s", st.Status)
	}
	fmt.Fprintln(out, "Payment received")
	return nil
}

func printSteps(out io.Writer, method string, vars payment.InstructionVars) {
	for i, step := range payment.InjectVariables(payment.GetInstructions(method), vars) {
		fmt.Fprintf(out, "%d. %s\n", i+1, step)
	}
}

func printOrders(out io.Writer, list []order.Order) {
	if len(list) == 0 {
		fmt.Fprintln(out, "No orders")
		return
	}
	table(out, "ID\tDATE\tSTATUS\tTOTAL", func(w io.Writer) {
		for _, o := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Date.Format("2006-01-02"), o.Status, utils.FormatVND(o.Total))
		}
	})
}
