package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-torqueui/pkg/blueprint"
	"github.com/goliatone/go-torqueui/pkg/form"
	"github.com/goliatone/go-torqueui/pkg/render"
	"github.com/goliatone/go-torqueui/pkg/renderers/prompt"
	"github.com/goliatone/go-torqueui/pkg/renderers/webview"
)

func getFormCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Render the reserve-sandbox form for one blueprint",
		RunE:  runForm,
	}
	cmd.Flags().StringP("blueprint", "b", "", "blueprint name (raw or display)")
	cmd.Flags().StringP("output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringP("renderer", "r", "webview", "renderer name (webview or prompt)")
	cmd.Flags().String("templates", "", "alternate template directory")
	_ = cmd.MarkFlagRequired("blueprint")
	return cmd
}

func runForm(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("blueprint")
	output, _ := cmd.Flags().GetString("output")
	rendererName, _ := cmd.Flags().GetString("renderer")
	templatesDir, _ := cmd.Flags().GetString("templates")

	payload, err := readPayload()
	if err != nil {
		return err
	}
	summaries, err := blueprint.DecodeList(payload)
	if err != nil {
		return err
	}

	summary, err := findSummary(summaries, name)
	if err != nil {
		return err
	}

	branch, err := blueprint.Branch(summary.URL)
	if err != nil {
		return err
	}

	model := form.Build(summary.Name, summary.Inputs, summary.Artifacts, branch)
	model.Description = summary.Description

	var options []webview.Option
	if templatesDir != "" {
		options = append(options, webview.WithTemplatesDir(templatesDir))
	}
	registry, err := rendererRegistry(options...)
	if err != nil {
		return err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(registry.List(), ", "))
	}

	document, err := renderer.Render(cmd.Context(), model, render.Options{})
	if err != nil {
		return err
	}

	if output != "" {
		if err := os.WriteFile(output, document, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("Form written to %s\n", output)
		return nil
	}

	fmt.Println(string(document))
	return nil
}

// rendererRegistry wires the built-in renderers for resolution by name.
func rendererRegistry(options ...webview.Option) (*render.Registry, error) {
	registry := render.NewRegistry()

	htmlRenderer, err := webview.New(options...)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, err
	}

	promptRenderer, err := prompt.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(promptRenderer); err != nil {
		return nil, err
	}
	return registry, nil
}
