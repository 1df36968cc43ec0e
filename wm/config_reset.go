package wm

// resetMutableConfig clears bindings/rules and resets appearance to
// defaults on a reload. Workspace count is deliberately untouched — it is
// only re-derived when set-workspaces is re-issued.
func (wm *WM) resetMutableConfig() {
	wm.resetBindings()
	wm.rules = nil
	wm.resetAppearance()
}

// ReloadConfig implements `reload-config`: resets mutable configuration,
// then asks the configuration pipeline to re-execute the config source and
// replay its lines. A non-zero config exit is reported back to the caller
// as `ERR config <exit-code>` by whatever wraps ReloadTrigger; partial
// commands that already ran before the failure are retained.
func (wm *WM) ReloadConfig() error {
	wm.resetMutableConfig()
	return wm.ReloadTrigger()
}
