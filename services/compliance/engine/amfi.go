// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

// buildAMFI constructs the mutual-fund advertising catalog, selected when
// the caller hints at mutual-fund content.
func buildAMFI(b *catalogBuilder) *Guideline {
	return &Guideline{
		Code: CodeAMFI,
		Name: "AMFI (Mutual Funds)",
		Categories: []Category{
			{Name: "Disclosures", Fields: []string{
				"arn_present", "risk_disclaimer_present", "scheme_details_disclosed",
				"past_performance_caveat",
			}},
			{Name: "Prohibitions", Fields: []string{
				"no_assured_returns", "no_misleading_performance", "no_celebrity_endorsement",
			}},
			{Name: "Other Compliances", Fields: []string{
				"simple_language", "approval_obtained",
			}},
		},
		Descriptions: map[string]string{
			"arn_present":               "Is the AMFI Registration Number (ARN) present?",
			"risk_disclaimer_present":   "Is the standard risk disclaimer present (e.g., \"Mutual Funds are subject to market risks...\")?",
			"scheme_details_disclosed":  "Are scheme details (name, objective, asset allocation) disclosed?",
			"past_performance_caveat":   "Is past performance disclosed with caveat that it does not guarantee future returns?",
			"no_assured_returns":        "No assured or guaranteed returns claimed?",
			"no_misleading_performance": "No misleading presentation of performance data?",
			"no_celebrity_endorsement":  "No unauthorized celebrity endorsements?",
			"simple_language":           "Is simple language used for investor understanding?",
			"approval_obtained":         "Evidence of prior approval where required?",
		},
		Evaluators: map[string]EvaluatorFunc{
			"arn_present":               presence(b.pattern("arn_number")),
			"risk_disclaimer_present":   presence(b.pattern("mf_risk_disclaimer")),
			"scheme_details_disclosed":  presence(b.pattern("scheme_details")),
			"past_performance_caveat":   presence(b.pattern("past_performance_caveat")),
			"no_assured_returns":        prohibition(b.pattern("assured_returns_strict"), 0.9),
			"no_misleading_performance": constant(true, 0.5),
			"no_celebrity_endorsement":  prohibition(b.pattern("celebrity_endorsement"), 0.8),
			"simple_language":           plainLanguage(0.6, 0.6, false),
			"approval_obtained":         presence(b.pattern("amfi_approval")),
		},
		Guidance: map[string]Guidance{
			"arn_present": {
				Pass: "AMFI ARN is present.",
				Fail: "Include the AMFI Registration Number (ARN) in the content.",
			},
			"risk_disclaimer_present": {
				Pass: "Risk disclaimer is present.",
				Fail: "Add the standard disclaimer: \"Mutual Funds are subject to market risks, read all scheme related documents carefully.\"",
			},
			"scheme_details_disclosed": {
				Pass: "Scheme details are disclosed.",
				Fail: "Disclose scheme name, objective, asset allocation, and other required details.",
			},
			"past_performance_caveat": {
				Pass: "Past performance caveat included.",
				Fail: "Add caveat: \"Past performance may or may not be sustained in future.\"",
			},
			"no_assured_returns": {
				Pass: "No assured returns claimed.",
				Fail: "Remove any claims of assured or guaranteed returns.",
			},
			"no_misleading_performance": {
				Pass: "Performance data not misleading.",
				Fail: "Ensure performance data is presented fairly and not misleading.",
			},
			"no_celebrity_endorsement": {
				Pass: "No celebrity endorsements.",
				Fail: "Remove celebrity endorsements unless authorized.",
			},
			"simple_language": {
				Pass: "Simple language used.",
				Fail: "Use simple, investor-friendly language.",
			},
			"approval_obtained": {
				Pass: "Approval evidence present.",
				Fail: "Obtain and indicate prior approval from AMFI/SEBI where required.",
			},
		},
	}
}
