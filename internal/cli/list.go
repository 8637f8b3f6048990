package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-torqueui/pkg/host"
	"github.com/goliatone/go-torqueui/pkg/tree"
)

func getListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the tree items produced from a blueprint listing payload",
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	payload, err := readPayload()
	if err != nil {
		return err
	}

	registry := host.NewRegistry(host.WithRegistryLogger(logger))
	registry.MustRegister(host.CommandListBlueprints, func(context.Context, ...string) (string, error) {
		return payload, nil
	})

	profiles, err := profileStore()
	if err != nil {
		return err
	}

	provider := tree.New(registry, profiles,
		tree.WithLogger(logger),
		tree.WithNotifier(host.NewLogNotifier(logger)),
	)

	ctx := cmd.Context()
	// The provider's first call defers population until a refresh; prime it
	// the way the host view would.
	if _, err := provider.Children(ctx, nil); err != nil {
		return err
	}
	provider.Refresh()

	items, err := provider.Children(ctx, nil)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("no launchable blueprints")
		return nil
	}

	for _, item := range items {
		branch := ""
		if item.Action != nil && item.Action.Reserve != nil {
			branch = item.Action.Reserve.Branch
		}
		fmt.Printf("%-32s %-16s %s\n", item.Label, branch, truncate(item.Description, 48))
	}
	return nil
}

// profileStore builds the profile source for this run: the YAML store when
// --profiles is given, a pinned local profile otherwise.
func profileStore() (host.ProfileStore, error) {
	if profilesFlag == "" {
		return host.StaticProfile{Profile: host.Profile{Label: "local"}}, nil
	}

	raw, err := readFile(profilesFlag)
	if err != nil {
		return nil, err
	}
	return host.ParseProfiles(raw)
}
