package propkit

import "strings"

// parseMultiValues converts the raw string of a multi-valued property into
// its ordered fields.
//
// Grammar (CSV subset, comma-delimited, double-quote escaping):
//   - "" parses to zero fields; otherwise field count is comma count + 1
//     outside quoted regions ("," is two empty fields).
//   - Unquoted fields run to the next comma and are trimmed of surrounding
//     whitespace; internal whitespace is preserved.
//   - A field whose first non-space character is '"' is quoted: content is
//     taken literally (commas, whitespace) up to the closing quote, with ""
//     as an escaped literal quote. Quoted content is not trimmed.
//   - After a closing quote only whitespace, a comma, or end-of-input may
//     follow.
//
// Single pass, no backtracking. No other escape sequences are recognized.
// key is only used to build the error.
func parseMultiValues(key, raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}

	fields := []string{}
	n := len(raw)
	i := 0

	for {
		start := i
		for i < n && (raw[i] == ' ' || raw[i] == '\t') {
			i++
		}

		if i < n && raw[i] == '"' {
			i++
			var field strings.Builder
			closed := false
			for i < n {
				c := raw[i]
				if c == '"' {
					if i+1 < n && raw[i+1] == '"' {
						// escaped quote
						field.WriteByte('"')
						i += 2
						continue
					}
					closed = true
					i++
					break
				}
				field.WriteByte(c)
				i++
			}
			if !closed {
				return nil, &MalformedValueError{Key: key, Raw: raw}
			}
			for i < n && (raw[i] == ' ' || raw[i] == '\t') {
				i++
			}
			if i < n && raw[i] != ',' {
				return nil, &MalformedValueError{Key: key, Raw: raw}
			}
			fields = append(fields, field.String())
		} else {
			for i < n && raw[i] != ',' {
				i++
			}
			fields = append(fields, strings.TrimSpace(raw[start:i]))
		}

		if i >= n {
			break
		}
		i++ // consume the comma
		if i >= n {
			// trailing comma closes an empty field
			fields = append(fields, "")
			break
		}
	}

	return fields, nil
}
