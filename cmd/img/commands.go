package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/img"
	"github.com/gogpu/img/pixel"
)

const (
	defaultRadius = 2
	defaultSigma  = 3
)

func channelsFlag(cmd *cobra.Command) *channelsValue {
	v := channelsValue(pixel.RGB)
	cmd.Flags().VarP(&v, "flags", "f", "channels to modify")
	return &v
}

func (a *app) grayscaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grayscale",
		Short: "Convert to grayscale",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.run(func(im *img.Image) (*img.Image, error) {
				return img.Grayscale(im, a.options()...), nil
			})
		},
	}
}

func (a *app) sepiaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sepia",
		Short: "Apply a sepia tone",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.run(func(im *img.Image) (*img.Image, error) {
				return img.Sepia(im, a.options()...), nil
			})
		},
	}
}

func (a *app) negativeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "negative",
		Short: "Invert channels",
		Args:  cobra.NoArgs,
	}
	flags := channelsFlag(cmd)
	cmd.RunE = func(*cobra.Command, []string) error {
		return a.run(func(im *img.Image) (*img.Image, error) {
			return img.Negative(im, pixel.ChannelFlags(*flags), a.options()...), nil
		})
	}
	return cmd
}

func (a *app) gammaCmd() *cobra.Command {
	var gamma float64
	cmd := &cobra.Command{
		Use:     "gamma",
		Aliases: []string{"gamma-correction"},
		Short:   "Apply gamma correction",
		Args:    cobra.NoArgs,
	}
	cmd.Flags().Float64VarP(&gamma, "gamma", "g", 0, "gamma value")
	_ = cmd.MarkFlagRequired("gamma")
	flags := channelsFlag(cmd)
	cmd.RunE = func(*cobra.Command, []string) error {
		return a.run(func(im *img.Image) (*img.Image, error) {
			return img.Gamma(im, gamma, pixel.ChannelFlags(*flags), a.options()...)
		})
	}
	return cmd
}

func (a *app) resizeCmd() *cobra.Command {
	var (
		size   sizeValue
		interp interpValue
	)
	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Scale to a new size",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.run(func(im *img.Image) (*img.Image, error) {
				return img.Resize(im, size.size, a.options(img.WithInterpolation(img.Interpolation(interp)))...)
			})
		},
	}
	cmd.Flags().VarP(&size, "size", "s", "target size")
	cmd.Flags().Var(&interp, "interp", "interpolation: nearest, bilinear or catmullrom")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func (a *app) cropCmd() *cobra.Command {
	var geom geometryValue
	cmd := &cobra.Command{
		Use:   "crop",
		Short: "Cut out a rectangle",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.run(func(im *img.Image) (*img.Image, error) {
				return img.Crop(im, geom.size, geom.at, a.options()...)
			})
		},
	}
	cmd.Flags().VarP(&geom, "size", "s", "window size and top-left corner")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func (a *app) blurCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blur",
		Short: "Blur with a mean or Gaussian kernel",
	}

	var meanRadius int
	mean := &cobra.Command{
		Use:     "mean",
		Aliases: []string{"average", "avg"},
		Short:   "Box blur",
		Args:    cobra.NoArgs,
	}
	mean.Flags().IntVarP(&meanRadius, "radius", "r", defaultRadius, "kernel radius")
	meanFlags := channelsFlag(mean)
	mean.RunE = func(*cobra.Command, []string) error {
		return a.run(func(im *img.Image) (*img.Image, error) {
			return img.BlurMean(im, meanRadius, pixel.ChannelFlags(*meanFlags), a.options()...)
		})
	}

	var (
		gaussRadius int
		sigma       float32
	)
	gauss := &cobra.Command{
		Use:     "gaussian",
		Aliases: []string{"gauss"},
		Short:   "Gaussian blur",
		Args:    cobra.NoArgs,
	}
	gauss.Flags().IntVarP(&gaussRadius, "radius", "r", defaultRadius, "kernel radius")
	gauss.Flags().Float32VarP(&sigma, "sigma", "s", defaultSigma, "standard deviation")
	gaussFlags := channelsFlag(gauss)
	gauss.RunE = func(*cobra.Command, []string) error {
		return a.run(func(im *img.Image) (*img.Image, error) {
			return img.BlurGaussian(im, gaussRadius, sigma, pixel.ChannelFlags(*gaussFlags), a.options()...)
		})
	}

	cmd.AddCommand(mean, gauss)
	return cmd
}

func (a *app) cannyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canny",
		Short: "Detect edges",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.run(func(im *img.Image) (*img.Image, error) {
				return img.Canny(im, a.options()...)
			})
		},
	}
}

func (a *app) kuwaharaCmd() *cobra.Command {
	var radius int
	cmd := &cobra.Command{
		Use:   "kuwahara",
		Short: "Apply the Kuwahara filter",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.run(func(im *img.Image) (*img.Image, error) {
				return img.Kuwahara(im, radius, a.options()...)
			})
		},
	}
	cmd.Flags().IntVarP(&radius, "radius", "r", img.DefaultKuwaharaRadius, "window radius")
	return cmd
}
