// Package domain defines the command and result structures used by the
// interactive trading console.
package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// CommandKind identifies the type of a parsed console command.
type CommandKind int

const (
	// KindQuit terminates the session loop.
	KindQuit CommandKind = iota
	// KindHelp requests the command summary.
	KindHelp
	// KindSetToken stores the bearer token for privileged calls.
	KindSetToken
	// KindLeverage issues a direct leverage update against the API.
	KindLeverage
	// KindPrompt sends free-form text to the automation engine.
	KindPrompt
	// KindUnrecognized reports malformed input back to the user.
	KindUnrecognized
)

// Command is a single parsed console instruction. Immutable once parsed.
type Command struct {
	Kind     CommandKind
	Token    string
	AssetID  int
	Leverage int
	Prompt   string
	Reason   string
}

// Parse classifies one trimmed line of raw input. The boolean is false for
// empty input, which the caller skips without dispatching anything.
// Keywords are case-insensitive, the token value keeps its original case.
func Parse(raw string) (Command, bool) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Command{}, false
	}

	switch strings.ToLower(line) {
	case "quit", "exit", "q":
		return Command{Kind: KindQuit}, true
	case "help":
		return Command{Kind: KindHelp}, true
	}

	keyword, rest := splitKeyword(line)
	switch strings.ToLower(keyword) {
	case "token":
		if rest == "" {
			return Command{Kind: KindUnrecognized, Reason: "missing token value, usage: token <your_token>"}, true
		}
		return Command{Kind: KindSetToken, Token: rest}, true
	case "leverage":
		parts := strings.Fields(rest)
		if len(parts) != 2 {
			return Command{Kind: KindUnrecognized, Reason: "invalid leverage syntax, usage: leverage <asset_id> <leverage>"}, true
		}
		assetID, err := strconv.Atoi(parts[0])
		if err != nil {
			return Command{Kind: KindUnrecognized, Reason: "invalid leverage syntax: asset id must be an integer"}, true
		}
		leverage, err := strconv.Atoi(parts[1])
		if err != nil {
			return Command{Kind: KindUnrecognized, Reason: "invalid leverage syntax: leverage must be an integer"}, true
		}
		return Command{Kind: KindLeverage, AssetID: assetID, Leverage: leverage}, true
	}

	return Command{Kind: KindPrompt, Prompt: line}, true
}

// splitKeyword cuts the first whitespace-separated field off the original
// line. Slicing the original string keeps the remainder's case and bytes
// intact even when lowering the keyword would change its length.
func splitKeyword(line string) (keyword, rest string) {
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		return line[:i], strings.TrimSpace(line[i:])
	}
	return line, ""
}
