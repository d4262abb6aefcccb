// Package info reports where data is stored and what it holds.
package info

import (
	"context"
	"fmt"
	"os"
	"sort"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/store"
)

type Info struct {
	Config  store.Config
	KV      store.KeyValue
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {

	if override := os.Getenv("MEDITARY_CONFIG_PATH"); override != "" {
		fmt.Println("MEDITARY_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("MEDITARY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())
	if f, ok := n.Config.(interface{ ConfigFile() string }); ok && f.ConfigFile() != "" {
		fmt.Println("Config.file: ", f.ConfigFile())
	}

	if n.KV == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	fmt.Printf("Keys:\n")
	found := 0
	for _, k := range n.KV.Keys(ctx) {
		fmt.Printf("  %s\n", k)
		found++
	}
	if found == 0 {
		fmt.Printf("  %s\n", "no keys")
	}

	if n.Service == nil {
		return nil
	}
	fmt.Println("Device: ", n.Service.DeviceID())
	fmt.Printf("Questions: %d  Entries: %d  Sessions: %d\n",
		len(n.Service.Questions()), len(n.Service.Entries()), len(n.Service.Sessions()))

	loadErrs := n.Service.LoadErrors()
	keys := make([]string, 0, len(loadErrs))
	for k := range loadErrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("Unreadable %s: %v\n", k, loadErrs[k])
	}
	return nil
}
