package shell

import "fmt"

// GenerateNushellIntegration returns a Nushell script snippet that provides
// termkit commands. Keybinding configuration is emitted as comments because
// Nushell keybindings must be defined statically in the user's config.nu and
// cannot be added dynamically via source.
func GenerateNushellIntegration(cfg IntegrationConfig) string {
	doc := nuPath(cfg.DocumentPath)
	cacheDir := nuPath(cfg.CacheDir)

	out := fmt.Sprintf(`# termkit shell integration for Nushell

# Keybinding: Add the following block to $env.config.keybindings in your config.nu:
# {
#     name: termkit_preview
#     modifier: control
#     keycode: char_p
#     mode: [emacs vi_normal vi_insert]
#     event: {
#         send: executehostcommand
#         cmd: "%[1]s preview %[2]s"
#     }
# }

# Render the document through the cache
def tk-render [] {
    ^%[1]s render %[2]s --cache-dir %[3]s --cache-ttl %[4]s
}

# Open the document in the preview
def tk-preview [] {
    ^%[1]s preview %[2]s
}

# Wrap stdin to a width
def tk-wrap [width: int = 80] {
    $in | ^%[1]s wrap --width $width
}

# Drop every cached render
def tk-cache-clear [] {
    ^%[1]s cache clear --cache-dir %[3]s
}

# Completions
extern "%[1]s render" [
    file?: path                 # Document to render, - for stdin
    --width(-w): int            # Render width
    --color: string             # auto, always or never
    --cache-dir: path           # Cache rendered output in this directory
    --cache-ttl: duration       # How long a cached render stays fresh
]
`, cfg.BinaryPath, doc, cacheDir, cfg.CacheTTL)

	if cfg.RenderOnStartup {
		out += fmt.Sprintf(`
# Render the document when the shell starts
if (%s | path exists) { tk-render }
`, doc)
	}
	return out
}
