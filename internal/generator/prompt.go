// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"
	"strings"

	"kogaine/internal/poster"
)

// BuildInstruction returns the natural-language request sent to the backend.
// With a hint the layout is pinned; without one the model picks from the
// five styles.
func BuildInstruction(brandName, brandType string, hint poster.LayoutStyle) string {
	styleInstruction := fmt.Sprintf(
		"Choose the best layout style from the available options: %s.",
		strings.Join(poster.LayoutNames(), ", "),
	)
	if hint != "" {
		styleInstruction = fmt.Sprintf("The layout style MUST be %q.", string(hint))
	}

	return fmt.Sprintf(`Create vintage poster content for a brand named %q which is a %q.
The tone should be retro, industrial, and utilitarian, similar to 1920s-1950s advertising.
%s
Be creative but keep it concise suitable for a poster.`,
		brandName, brandType, styleInstruction)
}
