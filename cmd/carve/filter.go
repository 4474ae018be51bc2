package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/carve/filter"
	"github.com/gogpu/carve/imageio"
)

func newInvertCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invert",
		Short: "Replace every sample v with 255 - v",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd, g, "invert", filter.Invert{})
		},
	}
	addColorFlag(cmd.Flags(), g)
	return cmd
}

func newBlurCmd(g *globalFlags) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "blur",
		Short: "Box blur with an n×n kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd, g, "blur", filter.Blur{Size: size, Workers: g.workers})
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 3, "kernel side length (odd)")
	addColorFlag(cmd.Flags(), g)
	return cmd
}

func newSharpenCmd(g *globalFlags) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "sharpen",
		Short: "Unsharp mask 2·I - blur(n)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd, g, "sharpen", filter.Sharpen{Size: size, Workers: g.workers})
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 3, "blur side length (odd)")
	addColorFlag(cmd.Flags(), g)
	return cmd
}

func newEdgesCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edges",
		Short: "Sobel gradient magnitude",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd, g, "edges", filter.Edges{Workers: g.workers})
		},
	}
	addColorFlag(cmd.Flags(), g)
	return cmd
}

func addColorFlag(fs *pflag.FlagSet, g *globalFlags) {
	fs.BoolVarP(&g.color, "color", "c", false, "filter each color channel instead of greyscale")
}

func runFilter(cmd *cobra.Command, g *globalFlags, op string, f filter.Filter) error {
	if g.color {
		img, err := imageio.LoadColor(g.in)
		if err != nil {
			return err
		}
		out, err := filter.PerChannel{Filter: f}.ApplyColor(img)
		if err != nil {
			return err
		}
		if err := imageio.SaveColor(g.out, out); err != nil {
			return err
		}
		summary(cmd.OutOrStdout(), op, img.Width(), img.Height(), out.Width(), out.Height(), g.out)
		return nil
	}

	img, err := imageio.LoadGray(g.in)
	if err != nil {
		return err
	}
	out, err := f.Apply(img)
	if err != nil {
		return err
	}
	if err := imageio.SaveGray(g.out, out); err != nil {
		return err
	}
	summary(cmd.OutOrStdout(), op, img.Width(), img.Height(), out.Width(), out.Height(), g.out)
	return nil
}
