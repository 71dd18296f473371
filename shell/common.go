// Package shell generates shell integration scripts for termkit.
//
// Each supported shell gets a generator function that produces a script snippet
// users can source in their shell RC file (~/.bashrc, ~/.zshrc, etc.). The
// generated scripts provide:
//
//   - A start-up render of a document, served from the render cache
//   - A keybinding (default Ctrl+P) that opens the document in the preview
//   - Helper functions wrapping the render, wrap and cache commands
package shell

import (
	"fmt"
	"strings"
)

// ShellType identifies a supported shell.
type ShellType int

const (
	// Bash is the Bourne Again Shell.
	Bash ShellType = iota
	// Zsh is the Z Shell.
	Zsh
	// Fish is the Friendly Interactive Shell.
	Fish
	// Nushell is the Nu shell.
	Nushell
)

// String returns the lowercase name of the shell type.
func (s ShellType) String() string {
	switch s {
	case Bash:
		return "bash"
	case Zsh:
		return "zsh"
	case Fish:
		return "fish"
	case Nushell:
		return "nushell"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseShellType maps a shell name to its ShellType. "nu" is accepted for
// Nushell.
func ParseShellType(name string) (ShellType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	case "nushell", "nu":
		return Nushell, nil
	default:
		return 0, fmt.Errorf("shell: unknown shell %q (supported: bash, zsh, fish, nushell)", name)
	}
}

// IntegrationConfig controls how the generated shell integration behaves.
type IntegrationConfig struct {
	// BinaryPath is the path to the termkit binary.
	BinaryPath string
	// DocumentPath is the document rendered at start-up and by the helpers.
	DocumentPath string
	// CacheDir holds cached renders so start-up skips layout.
	CacheDir string
	// CacheTTL is passed to --cache-ttl, for example "15m".
	CacheTTL string
	// RenderOnStartup renders the document when an interactive shell starts.
	RenderOnStartup bool
	// PreviewKeybinding is the key combo that opens the preview (default:
	// "\\C-p" for ctrl+p).
	PreviewKeybinding string
}

// DefaultIntegrationConfig returns an IntegrationConfig with sensible
// defaults. It assumes termkit is available on PATH and uses the standard
// XDG config and cache locations.
func DefaultIntegrationConfig() IntegrationConfig {
	return IntegrationConfig{
		BinaryPath:        "termkit",
		DocumentPath:      "$HOME/.config/termkit/motd.yaml",
		CacheDir:          "${XDG_CACHE_HOME:-$HOME/.cache}/termkit",
		CacheTTL:          "15m",
		RenderOnStartup:   true,
		PreviewKeybinding: `\C-p`,
	}
}

// GenerateIntegration dispatches to the appropriate shell-specific generator.
func GenerateIntegration(shell ShellType, cfg IntegrationConfig) string {
	switch shell {
	case Bash:
		return GenerateBashIntegration(cfg)
	case Zsh:
		return GenerateZshIntegration(cfg)
	case Fish:
		return GenerateFishIntegration(cfg)
	case Nushell:
		return GenerateNushellIntegration(cfg)
	default:
		return fmt.Sprintf("# termkit: %s integration is not yet implemented\n", shell)
	}
}

// renderCommand is the cached render invocation shared by every shell.
func renderCommand(cfg IntegrationConfig) string {
	return fmt.Sprintf(`%s render "%s" --cache-dir "%s" --cache-ttl %s`,
		cfg.BinaryPath, cfg.DocumentPath, cfg.CacheDir, cfg.CacheTTL)
}

const xdgCacheHome = "${XDG_CACHE_HOME:-$HOME/.cache}"

// fishPath rewrites POSIX parameter expansions fish does not understand.
func fishPath(s string) string {
	return strings.ReplaceAll(s, xdgCacheHome, "$HOME/.cache")
}

// nuPath turns a POSIX path into a Nushell string, interpolating $HOME.
func nuPath(s string) string {
	if !strings.Contains(s, "$") {
		return fmt.Sprintf("%q", s)
	}
	s = strings.ReplaceAll(s, xdgCacheHome, "$HOME/.cache")
	s = strings.ReplaceAll(s, "$HOME", "($env.HOME)")
	return `$"` + s + `"`
}
