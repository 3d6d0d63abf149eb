package command

import (
	"fmt"

	"github.com/dmorgan81/logoforge/internal/logo"
	"github.com/dmorgan81/logoforge/internal/store"
	"github.com/samber/do"
	"github.com/spf13/cobra"
)

func newGenerateCommand(root *rootOptions) *cobra.Command {
	var (
		params logo.Params
		out    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single logo and write it to a file or stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := params.Validate(); err != nil {
				return err
			}

			ctx, injector, err := setup(cmd, root)
			if err != nil {
				return err
			}
			defer func() { _ = injector.Shutdown() }()

			service, err := do.Invoke[*logo.Service](injector)
			if err != nil {
				return err
			}

			img, err := service.GenerateImage(ctx, params)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), img.DataURI())
				return err
			}
			return do.MustInvoke[*store.FileWriter](injector).Write(ctx, out, img.Data)
		},
	}
	cmd.Flags().StringVar(&params.BusinessIdea, "idea", "", "business name or idea")
	cmd.Flags().StringVar(&params.Style, "style", "", "desired logo style, e.g. minimalist or neon")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the image to this file instead of printing a data URI")
	return cmd
}
