// Command pagesim simulates page-replacement policies over memory traces.
package main

import "github.com/sarchlab/pagesim/pagesim/cmd"

func main() {
	cmd.Execute()
}
