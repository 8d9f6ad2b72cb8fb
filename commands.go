package skyisles

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// Quit stops Run after the current frame.
func (cmd *Commands) Quit() {
	cmd.app.quit = true
}
