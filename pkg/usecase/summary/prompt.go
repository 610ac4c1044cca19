package summary

import (
	"fmt"
	"strings"

	"github.com/habitloop/reflector/pkg/model"
)

func (u *UseCase) reflectionSystem() string {
	return fmt.Sprintf(
		"You are an assistant tasked with analyzing and reflecting on %s's data. They like %s so keep that in mind when reflecting.",
		u.profile.PersonName, u.profile.Interests)
}

func (u *UseCase) moodPrompt(payload string) string {
	return fmt.Sprintf(`Here is the summary of the habits and mood data for the week:
<data>
%s
</data>

Please carefully analyze this data. Based on your analysis, write a thoughtful <reflection> with the following sections:

- 'Nice' (A nice verbose summary of what went well in all areas)
- 'Not so nice' (A nice verbose summary of what didn't go so well in all areas)

After the reflection, please add a <questions_to_ponder> section with 4 insightful questions the person could ask themselves to further reflect on their habits progress and challenges, based solely on the provided data. Single questions that a behavioural psychologist would ask.

Please begin your response with the <reflection> and end with the <questions_to_ponder>. Write your response in %s.`,
		payload, u.profile.Language)
}

func (u *UseCase) journalPrompt(entries []model.JournalEntry, startDate, endDate string) string {
	formatted := make([]string, 0, len(entries))
	for _, entry := range entries {
		formatted = append(formatted, fmt.Sprintf("Date: %s\nEntry: %s", entry.Date, entry.Text))
	}
	allEntries := strings.Join(formatted, "\n\n")
	divider := strings.Repeat("-", 40)
	name := u.profile.PersonName

	return fmt.Sprintf(`Your task is to analyze and reflect on %s's journal entries from %s to %s. Here are all the entries:

%s
%s
%s

Based on these entries, please provide an AI-generated recap and reflection. Your response should include:

1. A comprehensive summary of the main themes, events, and emotions expressed across all of %s's journal entries.
2. Your perspective on %s's reflections over this period, including potential insights, patterns, or developments that %s might not have noticed.
3. Thoughtful questions or suggestions that might help %s gain deeper insights into their experiences and thoughts during this time.
4. If relevant, incorporate %s's interests in %s into your analysis, but only if it naturally fits the context of the journal entries.
5. Any observations on how %s's thoughts or feelings might have evolved over the period covered by these entries.

Remember, this is YOUR reflection, not %s's direct words.

Write your response in %s.`,
		name, startDate, endDate,
		divider, allEntries, divider,
		name, name, name, name, name, u.profile.Interests, name, name,
		u.profile.Language)
}

func (u *UseCase) thoughtsPrompt(payload string, pillars []*model.Pillar) string {
	var pillarList string
	if len(pillars) > 0 {
		names := make([]string, 0, len(pillars))
		for _, p := range pillars {
			names = append(names, fmt.Sprintf("%s %s", p.Emoji, p.Name))
		}
		pillarList = fmt.Sprintf("\n%s organizes their life around these pillars: %s. Anchor your suggestions to them where it fits.\n",
			u.profile.PersonName, strings.Join(names, ", "))
	}

	return fmt.Sprintf(`Here is %s's tracked habit and note data for the week:
<data>
%s
</data>
%s
Please write a short weekly recap of how the week went, followed by 3 concrete, achievable goals for next week grounded in the data above. Keep the goals specific and measurable. Write your response in %s.`,
		u.profile.PersonName, payload, pillarList, u.profile.Language)
}
