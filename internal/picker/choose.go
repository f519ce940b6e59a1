package picker

import (
	"fmt"

	"github.com/conn-castle/storekit/internal/messages"
	"github.com/conn-castle/storekit/internal/pkgmanager"
)

// Choose prompts with every supported manager, preselecting detected. Picking
// the detected manager keeps its original source; any other pick is SourcePrompt.
func Choose(ui UI, detected pkgmanager.Selection) (pkgmanager.Selection, error) {
	options := make([]string, 0, len(pkgmanager.All))
	byLabel := make(map[string]pkgmanager.Manager, len(pkgmanager.All))
	current := ""
	for _, m := range pkgmanager.All {
		label := m.String()
		if m == detected.Manager {
			label = fmt.Sprintf(messages.PickerDetectedFmt, m, detected.Source)
			current = label
		}
		options = append(options, label)
		byLabel[label] = m
	}

	if err := ui.Select(messages.PickerTitle, options, &current); err != nil {
		return pkgmanager.Selection{}, err
	}
	chosen, ok := byLabel[current]
	if !ok || chosen == detected.Manager {
		return detected, nil
	}
	return pkgmanager.Selection{Manager: chosen, Source: pkgmanager.SourcePrompt}, nil
}
