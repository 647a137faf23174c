package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/garagebook/internal/common"
)

// resolveID maps what the user typed to one of ids. It accepts the 1-based
// position shown in listings, a full id, or a prefix matching exactly one id.
func resolveID(what, ref string, ids []string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: %s: no selection", common.ErrValidation, what)
	}

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(ids) {
		return ids[n-1], nil
	}

	var match string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if strings.HasPrefix(id, ref) {
			if match != "" {
				return "", fmt.Errorf("%w: %s: %q matches more than one id", common.ErrValidation, what, ref)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("%s %s: %w", what, ref, common.ErrorNotFound)
	}
	return match, nil
}

// pick resolves args[0], asking for it first when missing.
func (a *App) pick(what string, args []string, ids []string) (string, error) {
	if len(ids) == 0 {
		return "", fmt.Errorf("%w: no %s recorded", common.ErrorNotFound, what)
	}
	ref := strings.Join(args, " ")
	if ref == "" {
		s, err := GetSimpleText(a.reader, fmt.Sprintf("Numero o id (%s)", what), a.out)
		if err != nil {
			return "", err
		}
		ref = s
	}
	return resolveID(what, ref, ids)
}

func (a *App) ask() prompter {
	return prompter{reader: a.reader, w: a.out}
}

// shortID is the id prefix shown in listings.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
