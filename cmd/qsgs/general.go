package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dabingnn/QSanguosha/internal/entities"
	"github.com/dabingnn/QSanguosha/internal/orchestrators/general"
)

var (
	listIncludeHidden bool
	listKingdom       string
	listPackage       string
	showJSONOutput    bool
	playWin           bool
	drawCount         int
	drawExclude       []string
)

var generalCmd = &cobra.Command{
	Use:   "general",
	Short: "Query generals",
}

var listGeneralsCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed generals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return runListGenerals(ctx, a.generals, cmd.OutOrStdout())
		})
	},
}

var showGeneralCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show the details of a general",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return runShowGeneral(ctx, a.generals, cmd.OutOrStdout(), args[0])
		})
	},
}

var playWordCmd = &cobra.Command{
	Use:   "play [name]",
	Short: "Play the last word of a general, or the win word with --win",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			kind := general.WordLast
			if playWin {
				kind = general.WordWin
			}
			return runPlayWord(ctx, a.generals, cmd.OutOrStdout(), args[0], kind)
		})
	},
}

var drawGeneralsCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw random selectable generals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return runDrawGenerals(ctx, a.generals, cmd.OutOrStdout(), drawCount, drawExclude)
		})
	},
}

func init() {
	listGeneralsCmd.Flags().BoolVar(&listIncludeHidden, "all", false, "Include hidden generals")
	listGeneralsCmd.Flags().StringVar(&listKingdom, "kingdom", "", "Only list generals of this kingdom")
	listGeneralsCmd.Flags().StringVar(&listPackage, "package", "", "Only list generals of this package")
	showGeneralCmd.Flags().BoolVar(&showJSONOutput, "json", false, "Output as JSON")
	playWordCmd.Flags().BoolVar(&playWin, "win", false, "Play the win word instead of the last word")
	drawGeneralsCmd.Flags().IntVar(&drawCount, "count", 5, "Number of generals to draw")
	drawGeneralsCmd.Flags().StringSliceVar(&drawExclude, "exclude", nil, "Generals that must not be drawn")

	generalCmd.AddCommand(listGeneralsCmd)
	generalCmd.AddCommand(showGeneralCmd)
	generalCmd.AddCommand(playWordCmd)
	generalCmd.AddCommand(drawGeneralsCmd)
}

func runListGenerals(ctx context.Context, svc general.Service, w io.Writer) error {
	out, err := svc.ListGenerals(ctx, &general.ListGeneralsInput{
		IncludeHidden: listIncludeHidden,
		Kingdom:       listKingdom,
		Package:       listPackage,
	})
	if err != nil {
		return err
	}

	for _, g := range out.Generals {
		writeGeneralLine(w, g)
	}
	_, _ = fmt.Fprintf(w, "%d generals\n", len(out.Generals))
	return nil
}

func runShowGeneral(ctx context.Context, svc general.Service, w io.Writer, name string) error {
	out, err := svc.DescribeGeneral(ctx, &general.DescribeGeneralInput{Name: name})
	if err != nil {
		return err
	}
	d := out.Details

	if showJSONOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	title := d.DisplayName
	if d.Lord {
		title += " (lord)"
	}
	_, _ = fmt.Fprintf(w, "%s [%s]\n", title, d.Name)
	_, _ = fmt.Fprintf(w, "  Package: %s\n", d.Package)
	_, _ = fmt.Fprintf(w, "  Kingdom: %s  HP: %d  Gender: %s\n", d.Kingdom, d.MaxHP, d.Gender)

	if len(d.Skills) > 0 {
		_, _ = fmt.Fprintln(w, "\nSkills:")
		for _, skill := range d.Skills {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", skill.DisplayName, strings.ReplaceAll(skill.Description, "\n", " "))
		}
	}
	if len(d.RelatedSkills) > 0 {
		_, _ = fmt.Fprintf(w, "  Related: %s\n", strings.Join(d.RelatedSkills, ", "))
	}

	writeOptional(w, "Last word", d.LastWord)
	writeOptional(w, "Win word", d.WinWord)
	writeOptional(w, "Designer", d.Designer)
	writeOptional(w, "Illustrator", d.Illustrator)
	writeOptional(w, "CV", d.CV)

	_, _ = fmt.Fprintln(w, "\nAssets:")
	_, _ = fmt.Fprintf(w, "  Card: %s\n", d.CardImage)
	_, _ = fmt.Fprintf(w, "  Tiny: %s\n", d.TinyIcon)
	writeOptional(w, "  Win audio", d.WinEffectPath)
	writeOptional(w, "  Death audio", d.LastEffectPath)
	return nil
}

func runPlayWord(ctx context.Context, svc general.Service, w io.Writer, name string, kind general.WordKind) error {
	out, err := svc.PlayWord(ctx, &general.PlayWordInput{Name: name, Kind: kind})
	if err != nil {
		return err
	}

	if out.Path == "" {
		_, _ = fmt.Fprintf(w, "no %s audio for %s\n", kind, name)
	} else {
		_, _ = fmt.Fprintf(w, "played %s\n", out.Path)
	}
	if out.Text != "" {
		_, _ = fmt.Fprintf(w, "%q\n", out.Text)
	}
	return nil
}

func runDrawGenerals(ctx context.Context, svc general.Service, w io.Writer, count int, exclude []string) error {
	out, err := svc.DrawGenerals(ctx, &general.DrawGeneralsInput{Count: count, Exclude: exclude})
	if err != nil {
		return err
	}

	for _, g := range out.Generals {
		writeGeneralLine(w, g)
	}
	return nil
}

func writeGeneralLine(w io.Writer, g *entities.General) {
	marker := ""
	if g.IsLord() {
		marker = "*"
	}
	_, _ = fmt.Fprintf(w, "%-16s %-6s %d  %s%s\n", g.Name(), g.Kingdom(), g.MaxHP(), g.PackageName(), marker)
}

func writeOptional(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", label, value)
}
