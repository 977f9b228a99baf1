package proto

import "strings"

// maxPositionalArgs is the number of positional arguments the parser will
// tokenize before folding the remainder into the last one, per spec.md
// §4.1 step 5 ("up to 14 further tokens ... any remaining text is appended
// to the last positional argument").
const maxPositionalArgs = 14

// Parse parses a single wire line into a Message. The line may or may not
// carry a trailing \r\n, \r, or \n terminator; if present it is stripped.
func Parse(line string) (Message, error) {
	line = stripTerminator(line)
	if len(line) == 0 {
		return Message{}, &ParseError{Kind: ErrEmptyMessage}
	}

	var msg Message

	if line[0] == '@' {
		sp := strings.IndexByte(line, ' ')
		var tagSection string
		if sp < 0 {
			tagSection, line = line[1:], ""
		} else {
			tagSection, line = line[1:sp], line[sp+1:]
		}
		msg.Tags = parseTags(tagSection)
		line = strings.TrimLeft(line, " ")
	}

	if len(line) > 0 && line[0] == ':' {
		sp := strings.IndexByte(line, ' ')
		var prefixSection string
		if sp < 0 {
			prefixSection, line = line[1:], ""
		} else {
			prefixSection, line = line[1:sp], line[sp+1:]
		}
		p := ParsePrefix(prefixSection)
		msg.Prefix = &p
		line = strings.TrimLeft(line, " ")
	}

	if len(line) == 0 {
		return Message{}, &ParseError{Kind: ErrInvalidCommand, Line: line}
	}

	var argSection, trailing string
	hasTrailing := false
	if idx := strings.Index(line, " :"); idx >= 0 {
		argSection = line[:idx]
		trailing = line[idx+2:]
		hasTrailing = true
	} else if strings.HasPrefix(line, ":") {
		argSection = ""
		trailing = line[1:]
		hasTrailing = true
	} else {
		argSection = line
	}

	fields := strings.Fields(argSection)
	if len(fields) == 0 {
		return Message{}, &ParseError{Kind: ErrInvalidCommand, Line: line}
	}

	cmdName := strings.ToUpper(fields[0])
	args := fields[1:]
	if len(args) > maxPositionalArgs {
		folded := strings.Join(args[maxPositionalArgs-1:], " ")
		args = append(append([]string{}, args[:maxPositionalArgs-1]...), folded)
	}

	cmd, err := buildCommand(cmdName, args, trailing, hasTrailing)
	if err != nil {
		return Message{}, err
	}
	msg.Command = cmd
	return msg, nil
}

// stripTerminator removes a trailing \r\n, \r, or \n from line.
func stripTerminator(line string) string {
	line = strings.TrimSuffix(line, "\r\n")
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}

// buildCommand dispatches on the command name (case-insensitively already
// upper-cased) to build a typed Command, falling back to KindRaw for
// unknown commands, numeric Response for 3-digit tokens, and known
// commands whose argument count doesn't fit kindArity's bound for that
// Kind — a message whose command parses but whose argument shape is wrong
// becomes Raw rather than an error, per proto/errors.go's ParseError doc.
func buildCommand(name string, args []string, trailing string, hasTrailing bool) (Command, error) {
	if code, ok := ParseResponse(name); ok {
		return Command{Kind: KindResponse, Numeric: code, Args: args, Trailing: trailing, HasTrailing: hasTrailing}, nil
	}

	if name == "MODE" {
		return buildModeCommand(args, trailing, hasTrailing), nil
	}

	kind, known := nameToKind[name]
	if !known {
		return Command{Kind: KindRaw, Name: name, Args: args, Trailing: trailing, HasTrailing: hasTrailing}, nil
	}

	total := len(args)
	if hasTrailing {
		total++
	}
	if a, ok := kindArity[kind]; ok && !a.allows(total) {
		return Command{Kind: KindRaw, Name: name, Args: args, Trailing: trailing, HasTrailing: hasTrailing}, nil
	}

	return Command{Kind: kind, Name: name, Args: args, Trailing: trailing, HasTrailing: hasTrailing}, nil
}

// buildModeCommand decides UserMODE vs ChannelMODE based on whether the
// target looks like a channel name.
func buildModeCommand(args []string, trailing string, hasTrailing bool) Command {
	allArgs := args
	if hasTrailing {
		allArgs = append(append([]string{}, args...), trailing)
	}

	kind := KindUserMODE
	if len(allArgs) > 0 && IsChannelName(allArgs[0]) {
		kind = KindChannelMODE
	}
	return Command{Kind: kind, Name: "MODE", Args: allArgs}
}
