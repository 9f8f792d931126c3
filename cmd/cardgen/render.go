package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/utsurius/actionable-messages/card"
	"github.com/utsurius/actionable-messages/internal/logctx"
	"github.com/utsurius/actionable-messages/internal/samples"
	"github.com/utsurius/actionable-messages/signing"
)

var renderFormats = []string{"json", "html", "yaml", "signed-html"}

type renderFlags struct {
	format        string
	lang          string
	indent        bool
	actionBaseURL string
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:       "render <sample>",
		Short:     "Print a sample card",
		Args:      cobra.ExactArgs(1),
		ValidArgs: samples.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.render(cmd, args[0], f)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&f.format, "format", "json", "Output format: "+strings.Join(renderFormats, ", "))
	cmd.Flags().StringVar(&f.lang, "lang", "", "Language code, overriding the settings")
	cmd.Flags().BoolVar(&f.indent, "indent", false, "Indent JSON output")
	cmd.Flags().StringVar(&f.actionBaseURL, "action-base-url", "", "Base URL of the action endpoints")
	return cmd
}

func (a *app) render(cmd *cobra.Command, name string, f *renderFlags) (string, error) {
	if !slices.Contains(renderFormats, f.format) {
		return "", fmt.Errorf("unsupported format %q (use %s)", f.format, strings.Join(renderFormats, ", "))
	}
	opts := a.settings.CardOptions()
	if f.lang != "" {
		opts = append(opts, card.WithLanguageCode(f.lang))
	}
	if f.indent {
		opts = append(opts, card.WithIndent("", "  "))
	}
	if f.format == "signed-html" {
		j, err := ephemeralSigner()
		if err != nil {
			return "", err
		}
		opts = append(opts, card.WithSigner(j))
	}

	c, err := samples.Build(name, samples.Params{CardOptions: opts, ActionBaseURL: f.actionBaseURL})
	if err != nil {
		return "", err
	}
	ctx := logctx.WithCardData(cmd.Context(), &logctx.CardData{
		Name:         name,
		Kind:         c.Kind().String(),
		Format:       f.format,
		LanguageCode: c.LanguageCode(),
	})
	a.log.DebugContext(ctx, "cli.render.start")

	switch f.format {
	case "html":
		return c.HTMLPayload()
	case "signed-html":
		return c.SignedHTMLPayload(ctx)
	case "yaml":
		js, err := c.JSONPayload()
		if err != nil {
			return "", err
		}
		return jsonToYAML(js)
	default:
		return c.JSONPayload()
	}
}

// ephemeralSigner returns a JWS holding a fresh Ed25519 key. Its tokens are
// only verifiable within the process.
func ephemeralSigner() (*signing.JWS, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	j := signing.NewJWS()
	j.AddEd25519Key(uuid.NewString(), priv)
	return j, nil
}

// jsonToYAML converts a JSON document to block-style YAML keeping the key
// order.
func jsonToYAML(js string) (string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(js), &doc); err != nil {
		return "", fmt.Errorf("parse payload: %w", err)
	}
	blockStyle(&doc)
	b, err := yaml.Marshal(&doc)
	if err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

// blockStyle clears the flow and quoting styles taken from the JSON source.
// Strings that would read back as another type stay quoted.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
