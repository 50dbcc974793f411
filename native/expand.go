package native

import (
	"strconv"
	"strings"
)

// expand appends template to dst with $n and ${n} replaced by the submatch n
// of src described by match. $$ is a literal dollar sign; a reference to a
// group that does not exist or did not participate expands to nothing, and a
// malformed reference is copied as is.
func expand(dst []byte, template, src string, match []int) []byte {
	for len(template) > 0 {
		i := strings.IndexByte(template, '$')
		if i < 0 {
			break
		}
		dst = append(dst, template[:i]...)
		template = template[i:]

		if len(template) > 1 && template[1] == '$' {
			dst = append(dst, '$')
			template = template[2:]
			continue
		}

		n, rest, ok := extractGroup(template)
		if !ok {
			dst = append(dst, '$')
			template = template[1:]
			continue
		}
		template = rest

		if n < len(match)/2 && match[2*n] >= 0 {
			dst = append(dst, src[match[2*n]:match[2*n+1]]...)
		}
	}

	return append(dst, template...)
}

// extractGroup parses $n or ${n} at the start of template.
func extractGroup(template string) (n int, rest string, ok bool) {
	if len(template) < 2 || template[0] != '$' {
		return 0, "", false
	}

	brace := template[1] == '{'
	i := 1
	if brace {
		i++
	}

	j := i
	for j < len(template) && template[j] >= '0' && template[j] <= '9' {
		j++
	}
	if j == i {
		return 0, "", false
	}

	n, err := strconv.Atoi(template[i:j])
	if err != nil {
		return 0, "", false
	}

	if brace {
		if j >= len(template) || template[j] != '}' {
			return 0, "", false
		}
		j++
	}

	return n, template[j:], true
}
