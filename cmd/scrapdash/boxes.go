package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scrapyardhq/scrapdash/pkg/enums"
	"github.com/scrapyardhq/scrapdash/pkg/types"
)

var boxesCmd = &cobra.Command{
	Use:   "boxes",
	Short: "Manage inventory boxes",
}

var boxesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List boxes visible to the current user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		boxes, err := a.client.Boxes.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(boxes)
	},
}

var boxesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one box",
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
		box, err := a.client.Boxes.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(box)
	},
}

var boxCreateReq types.BoxCreateRequest

var boxesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a box",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		box, err := a.client.Boxes.Create(cmd.Context(), boxCreateReq)
		if err != nil {
			return err
		}
		return printJSON(box)
	},
}

var boxesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a box",
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
		if err := a.client.Boxes.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Box %d deleted\n", id)
		return nil
	},
}

var boxesFinalizeCmd = &cobra.Command{
	Use:   "finalize <id>",
	Short: "Finalize a box so it can be listed for sale",
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
		box, err := a.client.Boxes.Finalize(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(box)
	},
}

var boxPhotoSlot string

var boxesPhotoCmd = &cobra.Command{
	Use:   "photo <id> <file>",
	Short: "Upload a photo into one of the box's slots",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		slot, err := enums.ParsePhotoSlot(boxPhotoSlot)
		if err != nil {
			return err
		}
		file, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("open photo: %w", err)
		}
		defer file.Close()

		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		box, err := a.client.Boxes.UploadPhoto(cmd.Context(), id, slot, filepath.Base(args[1]), file)
		if err != nil {
			return err
		}
		return printJSON(box)
	},
}

func init() {
	boxesCreateCmd.Flags().StringVar(&boxCreateReq.BoxNumber, "number", "", "box number, unique per yard")
	boxesCreateCmd.Flags().StringVar(&boxCreateReq.Name, "name", "", "display name")
	_ = boxesCreateCmd.MarkFlagRequired("number")
	_ = boxesCreateCmd.MarkFlagRequired("name")

	boxesPhotoCmd.Flags().StringVar(&boxPhotoSlot, "slot", string(enums.PhotoSlot1), "photo slot (photo1..photo8, photo_main, photo_overall, photo_weight_ticket)")

	boxesCmd.AddCommand(boxesListCmd, boxesGetCmd, boxesCreateCmd, boxesDeleteCmd, boxesFinalizeCmd, boxesPhotoCmd)
	rootCmd.AddCommand(boxesCmd)
}
