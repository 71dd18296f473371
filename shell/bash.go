package shell

import "fmt"

// GenerateBashIntegration returns a Bash script snippet that provides
// termkit shell integration. Source the output in ~/.bashrc.
func GenerateBashIntegration(cfg IntegrationConfig) string {
	out := fmt.Sprintf(`# termkit shell integration for Bash
# Source this in your ~/.bashrc or ~/.bash_profile

# Open the document in the preview with Ctrl+P
_termkit_preview() {
    %[1]s preview "%[2]s"
}
bind -x '"%[3]s": _termkit_preview'

# Render the document through the cache
tk-render() {
    %[4]s "$@"
}

# Open the document in the preview
tk-preview() {
    %[1]s preview "%[2]s" "$@"
}

# Wrap stdin to a width (default: terminal width)
tk-wrap() {
    %[1]s wrap --width "${1:-${COLUMNS:-80}}"
}

# Drop every cached render
tk-cache-clear() {
    %[1]s cache clear --cache-dir "%[5]s"
}

# Completions
source <(%[1]s completion bash)
`, cfg.BinaryPath, cfg.DocumentPath, cfg.PreviewKeybinding, renderCommand(cfg), cfg.CacheDir)

	if cfg.RenderOnStartup {
		out += fmt.Sprintf(`
# Render the document when an interactive shell starts
if [[ $- == *i* && -f "%s" ]]; then
    tk-render
fi
`, cfg.DocumentPath)
	}
	return out
}
