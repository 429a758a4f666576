package statement

// minFields is the number of leading columns a data row must carry:
// account id, type, date, amount, description. Extra trailing columns are
// tolerated and ignored.
const minFields = 5

// admit reports whether a raw record is statement data rather than noise
// (section headers, blank separator lines, malformed fragments). Rejection
// is silent; the caller just skips the row.
func admit(record []string) bool {
	if len(record) < minFields {
		return false
	}
	if !accountIDLike(record[colAccountID]) {
		return false
	}
	return !allEmpty(record)
}

// accountIDLike reports whether s looks like a numeric account identifier,
// optionally wrapped in single or double quote marks. Any other character
// marks the row as a header or narrative line that leaked into the data
// region.
func accountIDLike(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '\'' || r == '"':
		default:
			return false
		}
	}
	return true
}

func allEmpty(record []string) bool {
	for _, f := range record {
		if f != "" {
			return false
		}
	}
	return true
}
