// SPDX-License-Identifier: MIT

// Command lvpath queries YAML graph documents: shortest routes, adjacency
// matrices and degrees.
package main

import "github.com/LugolBis/Data-Toolkit/cmd/lvpath/commands"

func main() {
	commands.Execute()
}
