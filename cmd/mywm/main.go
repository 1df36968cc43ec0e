// Command mywm is a dynamic tiling window manager for X11.
package main

import "github.com/mywm/mywm/internal/commands"

func main() {
	commands.Execute()
}
