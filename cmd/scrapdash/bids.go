package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/scrapyardhq/scrapdash/pkg/types"
)

var bidsCmd = &cobra.Command{
	Use:   "bids",
	Short: "Place and decide bids",
}

var bidsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bids visible to the current user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		bids, err := a.client.Bids.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(bids)
	},
}

var bidsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List the bids the current user has placed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		bids, err := a.client.Bids.Mine(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(bids)
	},
}

var bidsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one bid",
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
		bid, err := a.client.Bids.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(bid)
	},
}

var bidPlaceReq types.BidCreateRequest

var bidsPlaceCmd = &cobra.Command{
	Use:   "place",
	Short: "Place a bid on an open sale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		bid, err := a.client.Bids.Place(cmd.Context(), bidPlaceReq)
		if err != nil {
			return err
		}
		return printJSON(bid)
	},
}

var bidUpdateAmount float64

var bidsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Adjust a pending bid's amount",
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
		bid, err := a.client.Bids.Update(cmd.Context(), id, types.BidUpdateRequest{AmountUSD: bidUpdateAmount})
		if err != nil {
			return err
		}
		return printJSON(bid)
	},
}

var bidsAcceptCmd = &cobra.Command{
	Use:   "accept <id>",
	Short: "Accept a bid, awarding the sale",
	Args:  cobra.ExactArgs(1),
	RunE:  bidTransition(func(a *app) bidTransitionFunc { return a.client.Bids.Accept }),
}

var bidsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a bid",
	Args:  cobra.ExactArgs(1),
	RunE:  bidTransition(func(a *app) bidTransitionFunc { return a.client.Bids.Reject }),
}

type bidTransitionFunc func(ctx context.Context, id int64) (*types.Bid, error)

func bidTransition(pick func(a *app) bidTransitionFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		bid, err := pick(a)(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(bid)
	}
}

func init() {
	bidsPlaceCmd.Flags().Int64Var(&bidPlaceReq.Sale, "sale", 0, "sale to bid on")
	bidsPlaceCmd.Flags().Float64Var(&bidPlaceReq.AmountUSD, "amount", 0, "bid amount in USD")
	_ = bidsPlaceCmd.MarkFlagRequired("sale")
	_ = bidsPlaceCmd.MarkFlagRequired("amount")

	bidsUpdateCmd.Flags().Float64Var(&bidUpdateAmount, "amount", 0, "new bid amount in USD")
	_ = bidsUpdateCmd.MarkFlagRequired("amount")

	bidsCmd.AddCommand(bidsListCmd, bidsMineCmd, bidsGetCmd, bidsPlaceCmd, bidsUpdateCmd, bidsAcceptCmd, bidsRejectCmd)
	rootCmd.AddCommand(bidsCmd)
}
