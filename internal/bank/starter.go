package bank

// Starter returns the small built-in bank used when no bank file can be
// loaded. It keeps the trainer usable out of the box; a real study bank
// is expected to replace it.
func Starter() []Question {
	return []Question{
		{
			ID:     "S1",
			Domain: DomainPeople,
			Prompt: "Two senior engineers on your team disagree openly about a design approach and the conflict is slowing the sprint. What should the project manager do first?",
			Choices: []string{
				"Escalate the disagreement to the sponsor",
				"Meet with both engineers to understand the root cause of the conflict",
				"Assign the design decision to a third engineer",
				"Document the conflict in the risk register and move on",
			},
			Type:         ItemSingle,
			CorrectIndex: 1,
			Explanation:  "Address conflict directly and early; understanding the root cause precedes any resolution technique.",
			Reference:    "PMBOK Guide, Resource Management",
		},
		{
			ID:     "S2",
			Domain: DomainProcess,
			Prompt: "During executing, a key deliverable fails its quality inspection. What should the project manager review first?",
			Choices: []string{
				"The project charter",
				"The quality management plan",
				"The stakeholder register",
				"The procurement agreements",
			},
			Type:         ItemSingle,
			CorrectIndex: 1,
			Explanation:  "The quality management plan defines the standards and procedures the deliverable was measured against.",
			Reference:    "PMBOK Guide, Quality Management",
		},
		{
			ID:     "S3",
			Domain: DomainBusiness,
			Prompt: "A regulatory change will make one of the project's deliverables non-compliant at release. What should the project manager do first?",
			Choices: []string{
				"Continue as planned since the baseline is approved",
				"Assess the impact and raise a change request",
				"Remove the deliverable from scope immediately",
				"Ask the team to work around the regulation",
			},
			Type:         ItemSingle,
			CorrectIndex: 1,
			Explanation:  "External compliance changes flow through impact assessment and integrated change control.",
			Reference:    "PMBOK Guide, Integration Management",
		},
		{
			ID:     "S4",
			Domain: DomainAgile,
			Prompt: "In an agile project, who is accountable for ordering the product backlog?",
			Choices: []string{
				"The project manager",
				"The development team",
				"The product owner",
				"The scrum master",
			},
			Type:         ItemSingle,
			CorrectIndex: 2,
			Explanation:  "The product owner owns backlog content and ordering; the team owns how much to pull into a sprint.",
			Reference:    "Agile Practice Guide",
		},
		{
			ID:     "S5",
			Domain: DomainProcess,
			Prompt: "The cost performance index (CPI) is 0.83. What does this indicate?",
			Choices: []string{
				"The project is under budget",
				"The project is over budget",
				"The project is behind schedule",
				"The project is ahead of schedule",
			},
			Type:         ItemSingle,
			CorrectIndex: 1,
			Explanation:  "CPI below 1.0 means each unit of spend earns less than a unit of value: a cost overrun.",
			Reference:    "PMBOK Guide, Cost Management",
		},
		{
			ID:     "S6",
			Domain: DomainPeople,
			Prompt: "A team member privately tells you they feel excluded from sprint planning decisions. What should you do?",
			Choices: []string{
				"Tell the team to include them more",
				"Observe a planning session and coach the team on collaborative decision making",
				"Move the team member to another project",
				"Note it for the next performance review",
			},
			Type:         ItemSingle,
			CorrectIndex: 1,
			Explanation:  "Servant leadership favors observing and coaching over directive fixes or deferral.",
			Reference:    "Agile Practice Guide, Team Performance",
		},
	}
}
