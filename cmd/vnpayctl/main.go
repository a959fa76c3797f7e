package main

import (
	"fmt"
	"io"
	"net/url"
	"os"

	_ "time/tzdata"

	"github.com/MikeRez0/ypbookstore/internal/adapter/config"
	"github.com/MikeRez0/ypbookstore/internal/adapter/gateway/vnpay"
	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "vnpayctl",
		Short:   "Build and check VNPay payment URLs",
		Version: Version,
	}

	rootCmd.AddCommand(urlCmd())
	rootCmd.AddCommand(verifyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient() (*vnpay.Client, error) {
	cfg, err := config.NewVNPayConfig()
	if err != nil {
		return nil, err
	}
	return vnpay.NewClient(cfg, zap.NewNop())
}

func urlCmd() *cobra.Command {
	var req struct {
		ref    string
		amount string
		bank   string
		locale string
		ip     string
	}

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print a signed payment URL for an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.Parse(req.amount)
			if err != nil {
				return fmt.Errorf("amount %q: %w", req.amount, err)
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			return printPaymentURL(cmd.OutOrStdout(), client, domain.PaymentRequest{
				Reference: domain.OrderReference(req.ref),
				Amount:    amount,
				BankCode:  domain.BankCode(req.bank),
				Locale:    domain.Locale(req.locale),
				IPAddr:    req.ip,
			})
		},
	}

	cmd.Flags().StringVarP(&req.ref, "ref", "r", "", "Order reference")
	cmd.Flags().StringVarP(&req.amount, "amount", "a", "", "Order total in VND")
	cmd.Flags().StringVarP(&req.bank, "bank", "b", "", "Bank code (VNPAYQR, VNBANK, INTCARD)")
	cmd.Flags().StringVarP(&req.locale, "locale", "l", "", "Payment page locale (vn, en)")
	cmd.Flags().StringVar(&req.ip, "ip", "", "Client IP address")
	_ = cmd.MarkFlagRequired("ref")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [callback-url]",
		Short: "Check the signature of a return or IPN callback URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			return verifyCallbackURL(cmd.OutOrStdout(), client, args[0])
		},
	}
}

func printPaymentURL(w io.Writer, client *vnpay.Client, req domain.PaymentRequest) error {
	paymentURL, err := client.PaymentURL(req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, paymentURL)
	return err
}

func verifyCallbackURL(w io.Writer, client *vnpay.Client, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("callback url: %w", err)
	}

	params := make(map[string]string)
	for k, v := range u.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	cb, ok := client.VerifyCallback(params)
	if !ok {
		return fmt.Errorf("signature mismatch")
	}

	fmt.Fprintf(w, "Signature:     OK\n")
	fmt.Fprintf(w, "Reference:     %s\n", cb.Reference)
	fmt.Fprintf(w, "Response code: %s\n", cb.ResponseCode)
	if cb.AmountValid {
		fmt.Fprintf(w, "Amount:        %d\n", cb.Amount)
	}
	if cb.TxnNo != "" {
		fmt.Fprintf(w, "Transaction:   %s\n", cb.TxnNo)
	}
	return nil
}
