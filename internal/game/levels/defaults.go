package levels

import (
	_ "embed"
	"fmt"

	"github.com/vovakirdan/pipewalker/internal/game/core"
)

//go:embed defaults/campaign.yaml
var defaultCampaignYAML []byte

// LoadDefault returns the embedded three-level campaign.
func LoadDefault() ([]core.LevelDef, error) {
	defs, err := ParseYAML(defaultCampaignYAML)
	if err != nil {
		return nil, fmt.Errorf("levels: embedded campaign: %w", err)
	}
	return defs, nil
}
