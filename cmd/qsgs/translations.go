package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/dabingnn/QSanguosha/internal/errors"
	"github.com/dabingnn/QSanguosha/internal/translation"
)

var pushReplace bool

var translationsCmd = &cobra.Command{
	Use:   "translations",
	Short: "Manage the shared translation store",
}

var pushTranslationsCmd = &cobra.Command{
	Use:   "push [locale]",
	Short: "Copy a locale table from the data directory into redis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return runPushTranslations(ctx, a.localCatalog, a.store, cmd.OutOrStdout(), args[0])
		})
	},
}

var listTranslationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the locales in the shared translation store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return runListTranslations(ctx, a.store, cmd.OutOrStdout())
		})
	},
}

func init() {
	pushTranslationsCmd.Flags().BoolVar(&pushReplace, "replace", false, "Drop stored keys missing from the local table")

	translationsCmd.AddCommand(pushTranslationsCmd)
	translationsCmd.AddCommand(listTranslationsCmd)
}

func requireStore(store translation.Store) error {
	if store == nil {
		return errors.FailedPrecondition("redis is not configured; set QSGS_REDIS_ADDR or --redis")
	}
	return nil
}

// runPushTranslations copies the table for locale from catalog into the
// store. catalog must not contain entries merged from the store itself, or a
// replacing push would write stale keys back.
func runPushTranslations(ctx context.Context, catalog *translation.Catalog, store translation.Store, w io.Writer, locale string) error {
	if err := requireStore(store); err != nil {
		return err
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return errors.InvalidArgumentf("invalid locale %q", locale)
	}
	locale = tag.String()

	messages := catalog.Messages(locale)
	if len(messages) == 0 {
		return errors.NotFoundf("no local translations for %s", locale).WithMeta("locale", locale)
	}

	out, err := store.Save(ctx, translation.SaveInput{
		Locale:   locale,
		Messages: messages,
		Replace:  pushReplace,
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "pushed %d messages for %s\n", out.Saved, locale)
	return nil
}

func runListTranslations(ctx context.Context, store translation.Store, w io.Writer) error {
	if err := requireStore(store); err != nil {
		return err
	}

	out, err := store.ListLocales(ctx, translation.ListLocalesInput{})
	if err != nil {
		return err
	}
	for _, locale := range out.Locales {
		_, _ = fmt.Fprintln(w, locale)
	}
	return nil
}
