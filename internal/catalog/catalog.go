package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Section is one themed group of reflection questions.
type Section struct {
	Title     string
	Icon      string
	Questions []string
}

// Sections is the fixed question catalog. Ordering matters: question keys,
// global numbering and the compiled report all derive from it.
var Sections = []Section{
	{
		Title: "Understanding the Interest",
		Icon:  "🎯",
		Questions: []string{
			"What made you decide to meet with the recruiter in the first place?",
			"How long have you been thinking about this?",
			"What specifically appeals to you about the Marines versus other branches (Army, Navy, Air Force, Coast Guard)?",
			"What do you think you'd gain from serving that you couldn't get on another path?",
			"Is there anything about your current situation or future plans that you're trying to get away from or avoid?",
		},
	},
	{
		Title: "Comparing Paths: Marines vs. Trades",
		Icon:  "⚖️",
		Questions: []string{
			"What are the pros and cons of enlisting versus starting your apprenticeship this summer?",
			"If you pursue the trades now, what do you think you'd miss out on? What about the reverse?",
			"How do you see your life at age 25 if you enlist? How about if you start your electrical or HVAC apprenticeship instead?",
			"Which path do you think gets you closer to owning your own business, and why?",
			"Have you considered that you could do your apprenticeship now and enlist later, or serve and then pursue the trades after—does the order matter to you?",
			"What would it take for you to feel successful at 30? Which path is more likely to get you there?",
		},
	},
	{
		Title: "MOS (Military Occupation) & Expectations",
		Icon:  "📋",
		Questions: []string{
			"What job (MOS) are you hoping to get in the Marines?",
			"Why that one—what draws you to it?",
			"The Marines assign your MOS based on their needs, your ASVAB scores, and availability. Knowing you may not get your first choice, what's your backup, and would you still enlist if you got something very different?",
			"Describe what you think daily life looks like in your desired MOS after boot camp and training school are finished.",
			"Have you researched which MOSs translate to civilian careers and which don't?",
		},
	},
	{
		Title: "The Hard Realities",
		Icon:  "⚔️",
		Questions: []string{
			"During boot camp, you'll have little to no contact with family, friends, or Bella for approximately 13 weeks. How do you think that will affect you and your relationships?",
			"After training, you could be deployed for months at a time with very limited communication. Describe how you'd handle that—both practically and emotionally.",
			"Marines are often first into combat. Describe what you know about what that actually means and how you've thought about that possibility.",
			"What's the hardest thing you've ever done physically and mentally, and how did you respond when you wanted to quit?",
			"How do you handle authority, especially when you disagree with a decision or think it's unfair?",
		},
	},
	{
		Title: "Relationships & Outside Factors",
		Icon:  "👥",
		Questions: []string{
			"How does Bella feel about this decision?",
			"Be honest with yourself: if Bella weren't leaving for Kentucky, would this still be on your radar?",
			"Our family is planning to move to Florida or Tennessee in the next few years. How does that factor into your thinking, if at all?",
		},
	},
	{
		Title: "Commitment, Contract & Timeline",
		Icon:  "📅",
		Questions: []string{
			"You have a meeting at your trade school this week. What are you hoping to learn from that, and how will it factor into your decision?",
			"After that meeting, how do you plan to weigh what you hear against what the recruiter told you?",
			"When do you feel you need to make this decision by? Why that timeframe?",
			"Is the recruiter suggesting a specific timeline or ship date? If so, what is it and why?",
			"Do you feel any pressure to decide quickly? Where is that pressure coming from?",
			"When would boot camp start if you enlist?",
			"What do you think is a reasonable amount of time to make a decision this significant?",
			"Are you willing to take more time to research, talk to former Marines, and compare paths before committing—even if the recruiter suggests otherwise?",
			"In your own words, explain what you'd be signing up for—length of active duty, reserve obligations (IRR), and what happens if you change your mind after you've enlisted.",
			"What happens if you get injured during service and can't continue? What's your plan?",
		},
	},
	{
		Title: "Financial Considerations",
		Icon:  "💰",
		Questions: []string{
			"Have you compared the financial paths—starting apprentice wages and journeyman pay over four years versus military pay, housing, benefits, and the GI Bill? What do you see as the trade-offs?",
			"How do you plan to handle money while you're in—saving, sending home, or other goals?",
		},
	},
	{
		Title: "Marine Culture & Outside Perspectives",
		Icon:  "🦅",
		Questions: []string{
			"Beyond the job, what do you know about Marine culture, values, and identity? What about that appeals to you or concerns you?",
			"Have you talked to any current or former Marines who aren't recruiters? If not, are you willing to before making a final decision?",
		},
	},
}

// TotalQuestions is the number of questions across all sections.
var TotalQuestions int

func init() {
	for _, s := range Sections {
		TotalQuestions += len(s.Questions)
	}
}

// Key builds the storage key for a question, zero-based on both indices.
func Key(section, question int) string {
	return fmt.Sprintf("%d-%d", section, question)
}

// ParseKey splits and validates a "section-question" key against the
// catalog bounds.
func ParseKey(key string) (section, question int, err error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed question key %q", key)
	}
	section, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed question key %q: %w", key, err)
	}
	question, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed question key %q: %w", key, err)
	}
	if section < 0 || section >= len(Sections) {
		return 0, 0, fmt.Errorf("section index %d out of range in key %q", section, key)
	}
	if question < 0 || question >= len(Sections[section].Questions) {
		return 0, 0, fmt.Errorf("question index %d out of range in key %q", question, key)
	}
	return section, question, nil
}

// GlobalNumber returns the 1-based sequential number of a question,
// continuous across sections in catalog order. Indices must be in range.
func GlobalNumber(section, question int) int {
	n := question + 1
	for i := 0; i < section; i++ {
		n += len(Sections[i].Questions)
	}
	return n
}

// Percent is the completion percentage rounded to the nearest integer.
func Percent(answered, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(answered) / float64(total) * 100))
}

// HalfwayThreshold is the answered count at which the halfway milestone
// fires: floor(total/2).
func HalfwayThreshold(total int) int {
	return total / 2
}
