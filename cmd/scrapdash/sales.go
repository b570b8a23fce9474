package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scrapyardhq/scrapdash/pkg/enums"
	"github.com/scrapyardhq/scrapdash/pkg/types"
)

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Manage sale listings",
}

var salesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the organization's own sales",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		sales, err := a.client.Sales.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(sales)
	},
}

var salesMarketplaceCmd = &cobra.Command{
	Use:   "marketplace",
	Short: "List open sales across all sellers, the buyer's view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		sales, err := a.client.Sales.Marketplace(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(sales)
	},
}

var salesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one sale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		sale, err := a.client.Sales.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(sale)
	},
}

var (
	saleCreateType   string
	saleCreateOpens  string
	saleCreateCloses string
	saleCreateReq    types.SaleCreateRequest
)

var salesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "List a finalized box for sale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		saleType, err := enums.ParseSaleType(saleCreateType)
		if err != nil {
			return err
		}
		opens, err := time.Parse(time.RFC3339, saleCreateOpens)
		if err != nil {
			return fmt.Errorf("parse --opens-at: %w", err)
		}
		closes, err := time.Parse(time.RFC3339, saleCreateCloses)
		if err != nil {
			return fmt.Errorf("parse --closes-at: %w", err)
		}
		saleCreateReq.SaleType = saleType
		saleCreateReq.OpensAt = opens
		saleCreateReq.ClosesAt = closes

		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		sale, err := a.client.Sales.Create(cmd.Context(), saleCreateReq)
		if err != nil {
			return err
		}
		return printJSON(sale)
	},
}

var salesPublishCmd = &cobra.Command{
	Use:   "publish <id>",
	Short: "Publish a draft sale to the marketplace",
	Args:  cobra.ExactArgs(1),
	RunE:  saleTransition(func(a *app) saleTransitionFunc { return a.client.Sales.Publish }),
}

var salesCloseCmd = &cobra.Command{
	Use:   "close <id>",
	Short: "Close bidding on a sale",
	Args:  cobra.ExactArgs(1),
	RunE:  saleTransition(func(a *app) saleTransitionFunc { return a.client.Sales.Close }),
}

var salesBidsCmd = &cobra.Command{
	Use:   "bids <id>",
	Short: "List the bids placed against a sale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		bids, err := a.client.Sales.Bids(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(bids)
	},
}

var salesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a draft sale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.client.Sales.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Sale %d deleted\n", id)
		return nil
	},
}

type saleTransitionFunc func(ctx context.Context, id int64) (*types.Sale, error)

func saleTransition(pick func(a *app) saleTransitionFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		sale, err := pick(a)(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(sale)
	}
}

func init() {
	salesCreateCmd.Flags().Int64Var(&saleCreateReq.Box, "box", 0, "finalized box to sell")
	salesCreateCmd.Flags().StringVar(&saleCreateReq.Title, "title", "", "listing title")
	salesCreateCmd.Flags().StringVar(&saleCreateReq.Description, "description", "", "listing description")
	salesCreateCmd.Flags().StringVar(&saleCreateType, "type", string(enums.SaleTypeSealedBid), "sale type (SEALED_BID or OPEN_AUCTION)")
	salesCreateCmd.Flags().StringVar(&saleCreateOpens, "opens-at", "", "bidding window open, RFC 3339")
	salesCreateCmd.Flags().StringVar(&saleCreateCloses, "closes-at", "", "bidding window close, RFC 3339")
	_ = salesCreateCmd.MarkFlagRequired("box")
	_ = salesCreateCmd.MarkFlagRequired("title")
	_ = salesCreateCmd.MarkFlagRequired("opens-at")
	_ = salesCreateCmd.MarkFlagRequired("closes-at")

	salesCmd.AddCommand(salesListCmd, salesMarketplaceCmd, salesGetCmd, salesCreateCmd, salesPublishCmd, salesCloseCmd, salesBidsCmd, salesDeleteCmd)
	rootCmd.AddCommand(salesCmd)
}
