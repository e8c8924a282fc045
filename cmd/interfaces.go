package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"golang-actiontrigger/internal/adapter/infrastructure/file"
	"golang-actiontrigger/internal/adapter/infrastructure/gige"
	"golang-actiontrigger/internal/adapter/infrastructure/network"
	"golang-actiontrigger/internal/port"

	"github.com/spf13/cobra"
)

// listInterfaces prints the interfaces the feature registry reports, with their type
func listInterfaces(registry port.FeatureRegistry) error {
	if err := registry.Startup(); err != nil {
		return err
	}
	defer registry.Shutdown() //nolint:errcheck

	ifaces, err := registry.Interfaces()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tUSABLE")
	for _, iface := range ifaces {
		ifaceType, err := iface.Type()
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\t%s\n", iface.ID(), "error: "+err.Error(), "no")
			continue
		}
		usable := "no"
		if ifaceType == port.InterfaceEthernet {
			usable = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", iface.ID(), ifaceType, usable)
	}
	return w.Flush()
}

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List the interfaces available as destination_interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := gige.NewSystem(network.NewManagerAdapter(), file.NewManagerAdapter(), gige.Options{})
		return listInterfaces(registry)
	},
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}
