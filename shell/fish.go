package shell

import "fmt"

// GenerateFishIntegration returns a Fish shell script snippet that provides
// termkit keybindings, helper functions, and tab completions.
func GenerateFishIntegration(cfg IntegrationConfig) string {
	out := fmt.Sprintf(`# termkit shell integration for Fish

# Open the document in the preview with Ctrl+P
function _termkit_preview
    commandline -f repaint
    %[1]s preview "%[2]s"
    commandline -f repaint
end
bind \cp _termkit_preview

function tk-render -d "Render the termkit document through the cache"
    %[3]s $argv
end

function tk-preview -d "Open the termkit document in the preview"
    %[1]s preview "%[2]s" $argv
end

function tk-wrap -d "Wrap stdin to a width"
    set -l width $COLUMNS
    if set -q argv[1]
        set width $argv[1]
    end
    %[1]s wrap --width $width
end

function tk-cache-clear -d "Drop every cached termkit render"
    %[1]s cache clear --cache-dir "%[4]s"
end

# Completions
%[1]s completion fish | source
`, cfg.BinaryPath, fishPath(cfg.DocumentPath), fishPath(renderCommand(cfg)), fishPath(cfg.CacheDir))

	if cfg.RenderOnStartup {
		out += fmt.Sprintf(`
# Render the document when an interactive shell starts
if status is-interactive; and test -f "%s"
    tk-render
end
`, fishPath(cfg.DocumentPath))
	}
	return out
}
