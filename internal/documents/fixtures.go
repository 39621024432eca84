package documents

import (
	"fmt"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
)

const sampleExtraLines = 50

func title(text string) domain.ContentLine {
	return domain.ContentLine{Text: text, FontSize: domain.TitleFontSize, IsTitle: true}
}

func tagline(text string) domain.ContentLine {
	return domain.ContentLine{Text: text, FontSize: domain.TaglineFontSize, IsBold: true}
}

func section(text string) domain.ContentLine {
	return domain.ContentLine{Text: text, FontSize: domain.SectionFontSize, IsSectionHeading: true}
}

// sampleLines is long enough to span several pages.
func sampleLines() []domain.ContentLine {
	lines := []domain.ContentLine{
		title("Test Document"),
		tagline("WasteNaut Food Rescue Platform"),
		domain.NewLine("This is a test line to verify PDF generation is working."),
		domain.NewLine("If you can see this text, the PDF is rendering correctly."),
		section("Section 1"),
		domain.NewLine("Item 1: This should appear on the page"),
		domain.NewLine("Item 2: This should also appear"),
		domain.NewLine("Item 3: And this too"),
		section("Section 2"),
		domain.NewLine("More content here to test page breaks"),
	}

	for i := 1; i <= sampleExtraLines; i++ {
		lines = append(lines, domain.NewLine(fmt.Sprintf("Line %d: This is additional content to test multi-page PDF generation.", i)))
	}

	return lines
}

func directLines() []domain.ContentLine {
	return []domain.ContentLine{
		title("Food Safety Guidelines"),
		tagline("WasteNaut Food Rescue Platform"),
		section("1. TEMPERATURE CONTROL"),
		domain.NewLine("- Perishable items must be kept at or below 40 degF"),
		domain.NewLine("- Hot foods must be kept at or above 140 degF"),
		domain.NewLine("- Use thermometers to monitor temperatures"),
		section("2. STORAGE GUIDELINES"),
		domain.NewLine("- Store items off the floor on clean shelving"),
		domain.NewLine("- Separate raw and cooked items"),
	}
}
