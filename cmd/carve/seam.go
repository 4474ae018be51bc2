package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/carve"
	"github.com/gogpu/carve/imageio"
	"github.com/gogpu/carve/seam"
)

// progressEvery is how many removed columns pass between progress lines.
const progressEvery = 25

func newCarveCmd(g *globalFlags) *cobra.Command {
	var cols int
	cmd := &cobra.Command{
		Use:   "carve",
		Short: "Remove the lowest-energy vertical seams",
		Long: `Remove --cols vertical seams, one at a time, from a color image.
Each seam follows the path of least Sobel energy from top to bottom.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			img, err := imageio.LoadColor(g.in)
			if err != nil {
				return err
			}

			log := carve.Logger()
			out, err := seam.Carve(img, cols,
				seam.WithLogger(log),
				seam.WithWorkers(g.workers),
				seam.WithProgress(func(done, total int) {
					if done%progressEvery == 0 || done == total {
						log.Info("carving", "done", done, "total", total)
					}
				}),
			)
			if err != nil {
				return err
			}
			if err := imageio.SaveColor(g.out, out); err != nil {
				return err
			}
			summary(cmd.OutOrStdout(), "carve", img.Width(), img.Height(), out.Width(), out.Height(), g.out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&cols, "cols", "k", 1, "number of columns to remove")
	return cmd
}
