package shell

import "fmt"

// GenerateZshIntegration returns a Zsh script snippet that provides
// termkit shell integration. Source the output in ~/.zshrc.
func GenerateZshIntegration(cfg IntegrationConfig) string {
	out := fmt.Sprintf(`# termkit shell integration for Zsh
# Source this in your ~/.zshrc

# Open the document in the preview with Ctrl+P
_termkit_preview() {
    BUFFER=""
    zle reset-prompt
    %[1]s preview "%[2]s"
    zle reset-prompt
}
zle -N _termkit_preview
bindkey '^P' _termkit_preview

# Render the document through the cache
tk-render() {
    %[3]s "$@"
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
    %[1]s cache clear --cache-dir "%[4]s"
}

# Completions
source <(%[1]s completion zsh)
compdef _termkit %[1]s
`, cfg.BinaryPath, cfg.DocumentPath, renderCommand(cfg), cfg.CacheDir)

	if cfg.RenderOnStartup {
		out += fmt.Sprintf(`
# Render the document when an interactive shell starts
if [[ -o interactive && -f "%s" ]]; then
    tk-render
fi
`, cfg.DocumentPath)
	}
	return out
}
