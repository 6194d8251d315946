// Command crmctl runs maintenance tasks against the CRM database: schema
// migration, tag seeding, operator accounts and the birthday greeting.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(connectRuntime).Execute(); err != nil {
		os.Exit(1)
	}
}
