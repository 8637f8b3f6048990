package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-torqueui/pkg/blueprint"
	"github.com/goliatone/go-torqueui/pkg/form"
	"github.com/goliatone/go-torqueui/pkg/panel"
	"github.com/goliatone/go-torqueui/pkg/render"
	"github.com/goliatone/go-torqueui/pkg/renderers/prompt"
)

func getReserveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Collect the reserve form interactively and print the start command",
		Long: `reserve walks the blueprint's form fields through terminal prompts and
prints the start_torque_sandbox invocation a form submit would produce.`,
		RunE: runReserve,
	}
	cmd.Flags().StringP("blueprint", "b", "", "blueprint name (raw or display)")
	_ = cmd.MarkFlagRequired("blueprint")
	return cmd
}

func runReserve(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("blueprint")

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

	renderer, err := prompt.New()
	if err != nil {
		return err
	}

	collected, err := renderer.Collect(cmd.Context(), model, render.Options{})
	if err != nil {
		return err
	}

	inputOrder := make([]string, 0, len(summary.Inputs))
	for _, input := range summary.Inputs {
		inputOrder = append(inputOrder, input.Name)
	}
	artifactOrder := make([]string, 0, len(summary.Artifacts))
	for artifact := range summary.Artifacts {
		artifactOrder = append(artifactOrder, artifact)
	}
	sort.Strings(artifactOrder)

	fmt.Printf("%s %q %q %d %q %q %q\n",
		"start_torque_sandbox",
		summary.Name,
		collected.SandboxName,
		collected.Duration,
		panel.SerializeValues(inputOrder, collected.Inputs),
		panel.SerializeValues(artifactOrder, collected.Artifacts),
		branch,
	)
	return nil
}
