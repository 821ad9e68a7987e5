package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuits/cmd/circuits/handlers"
	"github.com/katalvlaran/circuits/config"
)

// Bounded returns the command for the bounded-edge cluster product.
func Bounded(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounded [input]",
		Short: "Multiply the three largest cluster sizes after K shortest edges",
		Long: `Connect the K shortest edges, skips included, then print the product
of the three largest cluster sizes. Missing ranks count as 1.`,
		Args: inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, load, handlers.Bounded)
		},
	}
	cmd.Flags().IntP("edges", "k", config.DefaultEdges, "Number of shortest edges to connect")

	return cmd
}

// Span returns the command for the full spanning walk.
func Span(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "span [input]",
		Short: "Connect until one cluster remains and multiply the completing edge's X coordinates",
		Args:  inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, load, handlers.Span)
		},
	}
}

// Solve returns the command that prints both answers.
func Solve(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Print the bounded product and the spanning product, one per line",
		Args:  inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, load, handlers.Solve)
		},
	}
	cmd.Flags().IntP("edges", "k", config.DefaultEdges, "Number of shortest edges to connect in the bounded walk")

	return cmd
}

// Tree returns the command for the minimum spanning tree summary.
func Tree(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [input]",
		Short: "Print the total and longest edge length of a minimum spanning tree",
		Args:  inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, load, handlers.Tree)
		},
	}
}
