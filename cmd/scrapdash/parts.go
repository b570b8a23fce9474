package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scrapyardhq/scrapdash/pkg/enums"
	"github.com/scrapyardhq/scrapdash/pkg/types"
)

var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "Manage catalogued parts",
}

var partsBoxFilter int64

var partsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List parts, optionally scoped to one box",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		var parts []types.Part
		if partsBoxFilter > 0 {
			parts, err = a.client.Parts.ListByBox(cmd.Context(), partsBoxFilter)
		} else {
			parts, err = a.client.Parts.List(cmd.Context())
		}
		if err != nil {
			return err
		}
		return printJSON(parts)
	},
}

var partsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one part",
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
		part, err := a.client.Parts.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(part)
	},
}

var (
	partCreateMaterial  string
	partCreateCondition string
	partCreateReq       types.PartCreateRequest
)

var partsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Catalogue a part inside a box",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		material, err := enums.ParseMaterialType(partCreateMaterial)
		if err != nil {
			return err
		}
		condition, err := enums.ParsePartCondition(partCreateCondition)
		if err != nil {
			return err
		}
		partCreateReq.MaterialType = material
		partCreateReq.Condition = condition

		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		part, err := a.client.Parts.Create(cmd.Context(), partCreateReq)
		if err != nil {
			return err
		}
		return printJSON(part)
	},
}

var partsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a part",
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
		if err := a.client.Parts.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Part %d deleted\n", id)
		return nil
	},
}

var partsPhotoCmd = &cobra.Command{
	Use:   "photo <id> <file>",
	Short: "Upload the part's photo",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
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
		part, err := a.client.Parts.UploadPhoto(cmd.Context(), id, filepath.Base(args[1]), file)
		if err != nil {
			return err
		}
		return printJSON(part)
	},
}

func init() {
	partsListCmd.Flags().Int64Var(&partsBoxFilter, "box", 0, "only parts in this box")

	partsCreateCmd.Flags().Int64Var(&partCreateReq.Box, "box", 0, "box the part belongs to")
	partsCreateCmd.Flags().StringVar(&partCreateMaterial, "material", "", "material type, e.g. COPPER")
	partsCreateCmd.Flags().StringVar(&partCreateReq.PartType, "type", "", "part type, e.g. alternator")
	partsCreateCmd.Flags().Float64Var(&partCreateReq.WeightLbs, "weight-lbs", 0, "weight in pounds")
	partsCreateCmd.Flags().StringVar(&partCreateCondition, "condition", string(enums.ConditionMixed), "part condition")
	partsCreateCmd.Flags().StringVar(&partCreateReq.Notes, "notes", "", "free-form notes")
	_ = partsCreateCmd.MarkFlagRequired("box")
	_ = partsCreateCmd.MarkFlagRequired("material")
	_ = partsCreateCmd.MarkFlagRequired("type")

	partsCmd.AddCommand(partsListCmd, partsGetCmd, partsCreateCmd, partsDeleteCmd, partsPhotoCmd)
	rootCmd.AddCommand(partsCmd)
}
