// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

// buildStock constructs the securities-advertising (OBPP) catalog used for
// stock market, IPO, and derivatives content. It is the largest catalog:
// five categories spanning disclosures, prohibitions, and operational
// compliance duties.
//
// Several fields are undeterminable from plain text (font size, AV
// duration, quarterly uploads); their evaluators return value=false with
// confidence 0.0 so the judge can fill them in when available.
func buildStock(b *catalogBuilder) *Guideline {
	return &Guideline{
		Code: CodeStock,
		Name: "NSE/BSE/MCA (Stock Market)",
		Categories: []Category{
			{Name: "Forms of Communication", Fields: []string{
				"is_advertisement",
			}},
			{Name: "Disclosures", Fields: []string{
				"name_address_reg", "accurate_info", "standard_warning_present",
				"warning_font_size_ok", "av_duration_ok", "regional_languages_used",
				"hyperlink_for_sms_ok", "product_details_disclosed", "exchange_logo_absent",
				"claims_sourced", "simple_language_used", "fixed_returns_warning_present",
				"no_other_logos_without_approval",
			}},
			{Name: "Prohibitions", Fields: []string{
				"no_illegal_or_false", "no_exaggerated_slogans", "no_superlatives_unsubstantiated",
				"no_inflation_beating_claims", "no_discrediting_competitors", "no_celebrities",
				"no_assured_returns", "no_sebi_logo",
			}},
			{Name: "Other Compliances", Fields: []string{
				"approvals_required_or_template", "undertakings_provided", "exemptions_applied_correctly",
				"quarterly_upload_done", "no_games_or_prizes", "retention_5y", "reapprovals_after_180d",
				"medium_changes_ok", "suspension_rules_followed", "third_party_action_compliant",
				"no_client_data_sharing", "liabilities_disclaimed",
			}},
			{Name: "Penalties", Fields: []string{
				"penalty_awareness",
			}},
		},
		Descriptions: map[string]string{
			"is_advertisement":                "Is this an advertisement?",
			"name_address_reg":                "Is name, address, and SEBI registration present?",
			"accurate_info":                   "Is information accurate?",
			"standard_warning_present":        "Is standard warning present?",
			"warning_font_size_ok":            "Is warning font size adequate?",
			"av_duration_ok":                  "Is AV duration compliant?",
			"regional_languages_used":         "Are regional languages used where required?",
			"hyperlink_for_sms_ok":            "Is hyperlink for SMS compliant?",
			"product_details_disclosed":       "Are product details disclosed?",
			"exchange_logo_absent":            "Is exchange logo absent or authorized?",
			"claims_sourced":                  "Are claims sourced?",
			"simple_language_used":            "Is simple language used?",
			"fixed_returns_warning_present":   "Is fixed returns warning present if applicable?",
			"no_other_logos_without_approval": "No unauthorized logos?",
			"no_illegal_or_false":             "No illegal or false statements?",
			"no_exaggerated_slogans":          "No exaggerated slogans?",
			"no_superlatives_unsubstantiated": "No unsubstantiated superlatives?",
			"no_inflation_beating_claims":     "No inflation-beating claims?",
			"no_discrediting_competitors":     "No discrediting competitors?",
			"no_celebrities":                  "No unauthorized celebrities?",
			"no_assured_returns":              "No assured returns?",
			"no_sebi_logo":                    "No unauthorized SEBI logo?",
			"approvals_required_or_template":  "Approvals or templates used?",
			"undertakings_provided":           "Undertakings provided?",
			"exemptions_applied_correctly":    "Exemptions applied correctly?",
			"quarterly_upload_done":           "Quarterly upload done?",
			"no_games_or_prizes":              "No games or prizes?",
			"retention_5y":                    "Retention for 5 years?",
			"reapprovals_after_180d":          "Reapprovals after 180 days?",
			"medium_changes_ok":               "Medium changes compliant?",
			"suspension_rules_followed":       "Suspension rules followed?",
			"third_party_action_compliant":    "Third-party actions compliant?",
			"no_client_data_sharing":          "No unauthorized client data sharing?",
			"liabilities_disclaimed":          "Liabilities disclaimed?",
			"penalty_awareness":               "Penalty awareness?",
		},
		Evaluators: map[string]EvaluatorFunc{
			"is_advertisement":                constant(true, 0.5),
			"name_address_reg":                presence(b.pattern("sebi_registration")),
			"accurate_info":                   constant(true, 0.5),
			"standard_warning_present":        presence(b.pattern("standard_warning")),
			"warning_font_size_ok":            constant(false, 0.0),
			"av_duration_ok":                  constant(false, 0.0),
			"regional_languages_used":         presence(b.pattern("regional_language")),
			"hyperlink_for_sms_ok":            presence(b.pattern("hyperlink")),
			"product_details_disclosed":       presence(b.pattern("product_fields")),
			"exchange_logo_absent":            prohibition(b.pattern("exchange_logo"), 0.2),
			"claims_sourced":                  presence(b.pattern("claims_sourced")),
			"simple_language_used":            plainLanguage(0.6, 0.5, true),
			"fixed_returns_warning_present":   presence(b.pattern("fixed_returns")),
			"no_other_logos_without_approval": constant(true, 0.4),
			"no_illegal_or_false":             constant(true, 0.5),
			"no_exaggerated_slogans":          prohibition(b.pattern("exaggerated_slogans"), 0.7),
			"no_superlatives_unsubstantiated": prohibition(b.pattern("superlatives"), 0.7),
			"no_inflation_beating_claims":     prohibition(b.pattern("inflation_beating"), 0.7),
			"no_discrediting_competitors":     prohibition(b.pattern("discrediting"), 0.7),
			"no_celebrities":                  prohibition(b.pattern("celebrity"), 0.7),
			"no_assured_returns":              prohibition(b.pattern("assured_language"), 0.7),
			"no_sebi_logo":                    prohibition(b.pattern("sebi_logo"), 0.7),
			"approvals_required_or_template":  presence(b.pattern("approvals")),
			"undertakings_provided":           presence(b.pattern("undertaking")),
			"exemptions_applied_correctly":    presence(b.pattern("exemption")),
			"quarterly_upload_done":           constant(false, 0.0),
			"no_games_or_prizes":              prohibition(b.pattern("games_prizes"), 0.7),
			"retention_5y":                    presence(b.pattern("retention_five_years")),
			"reapprovals_after_180d":          presence(b.pattern("reapproval_180_days")),
			"medium_changes_ok":               constant(true, 0.5),
			"suspension_rules_followed":       presence(b.pattern("suspension")),
			"third_party_action_compliant":    prohibition(b.pattern("third_party"), 0.4),
			"no_client_data_sharing":          prohibition(b.pattern("client_data_sharing"), 0.4),
			"liabilities_disclaimed":          presence(b.pattern("liabilities")),
			"penalty_awareness":               constant(true, 0.3),
		},
		Guidance: map[string]Guidance{
			"is_advertisement": {
				Pass: "This content is clearly an advertisement (format & intent recognized).",
				Fail: "Ensure the communication mode is labeled and consistent (e.g., 'Advertisement' header or appropriate metadata).",
			},
			"name_address_reg": {
				Pass: "SEBI registration number and required issuer identity are clearly present.",
				Fail: "Add the intermediary's name, address and SEBI Registration No. (e.g., 'SEBI Reg. No: INZ00012345') in a readable location.",
			},
			"accurate_info": {
				Pass: "Key facts (rates, numbers, names) appear consistent and plausible.",
				Fail: "Verify and correct any factual inaccuracies (dates, percentages, product names) before publishing.",
			},
			"standard_warning_present": {
				Pass: "Standard risk disclaimer present (e.g., 'Mutual funds are subject to market risk').",
				Fail: "Insert the mandatory risk disclaimer; recommended phrasing: 'Mutual funds are subject to market risk. Please read the offer document carefully.'",
			},
			"warning_font_size_ok": {
				Pass: "Warning/disclaimer text appears to meet prominence/readability requirements.",
				Fail: "Increase the disclaimer font size and prominence so it is legible and not visually de-emphasized (follow brand/OBPP specs).",
			},
			"av_duration_ok": {
				Pass: "AV disclaimers meet duration/word-count thresholds (e.g., visible/readable for required seconds).",
				Fail: "Ensure AV disclaimers are displayed for the regulator-prescribed duration and readable when spoken/displayed.",
			},
			"regional_languages_used": {
				Pass: "Regional language warnings provided as required.",
				Fail: "Provide region-appropriate language versions of the mandatory warnings or a clear link to the translation.",
			},
			"hyperlink_for_sms_ok": {
				Pass: "Hyperlinks (or SMS short links) to full terms/offer documents are present and valid.",
				Fail: "Add a valid hyperlink or short URL (SMS-compliant) to the full offer document or disclosures.",
			},
			"product_details_disclosed": {
				Pass: "Product-level details (issuer, tenor, rating, YTM/coupon) are disclosed.",
				Fail: "Disclose required product details - issuer, tenor, rating, yield-to-maturity or equivalent fields.",
			},
			"exchange_logo_absent": {
				Pass: "No stock-exchange logo wrongly used in the creative (no misleading affiliation).",
				Fail: "Remove exchange logos or obtain explicit authorization; do not imply listing/endorsement by an exchange.",
			},
			"claims_sourced": {
				Pass: "Claims include sources (surveys, data) where applicable.",
				Fail: "Add verifiable sources for claims (e.g., 'Source: XYZ survey, 2024') or remove unsupported claims.",
			},
			"simple_language_used": {
				Pass: "Language is plain and accessible to retail investors.",
				Fail: "Rewrite complex sentences into simple, plain-language statements targeted at the retail investor.",
			},
			"fixed_returns_warning_present": {
				Pass: "If fixed/assured return language used, an explicit warning and context exists.",
				Fail: "Remove any claim of 'fixed' or 'assured' returns, or explicitly qualify and back with permitted wording and disclosures.",
			},
			"no_other_logos_without_approval": {
				Pass: "No third-party logos used without explicit approval.",
				Fail: "Remove or obtain approvals for third-party logos shown in the creative.",
			},
			"no_illegal_or_false": {
				Pass: "No illegal or false statements detected.",
				Fail: "Remove statements that are false, illegal or misleading and re-run compliance checks.",
			},
			"no_exaggerated_slogans": {
				Pass: "No exaggerated slogans (e.g., 'best ever') detected.",
				Fail: "Remove exaggerated marketing slogans; use objective, verifiable phrasing instead.",
			},
			"no_superlatives_unsubstantiated": {
				Pass: "No unsubstantiated superlatives (#1, 'leading') present.",
				Fail: "Remove superlatives or add evidence/sources to substantiate any ranking claims.",
			},
			"no_inflation_beating_claims": {
				Pass: "No claims of 'beat inflation' or similar present.",
				Fail: "Remove or substantiate any claim that promises to 'beat inflation' - these are sensitive and must be supported with evidence.",
			},
			"no_discrediting_competitors": {
				Pass: "No discrediting of competitors detected.",
				Fail: "Do not disparage competitors; remove comparative language that discredits other firms/products.",
			},
			"no_celebrities": {
				Pass: "No celebrity endorsement detected (or authorizations exist).",
				Fail: "Remove celebrity imagery/text unless documented approvals and disclosures are attached.",
			},
			"no_assured_returns": {
				Pass: "No assured / guaranteed returns claimed.",
				Fail: "Delete statements implying assured/guaranteed returns; ensure disclaimers are present if any returns are discussed.",
			},
			"no_sebi_logo": {
				Pass: "SEBI logo is not used incorrectly.",
				Fail: "Remove any misuse of SEBI's name/logo or obtain explicit permission.",
			},
			"approvals_required_or_template": {
				Pass: "Approvals and templates used where required.",
				Fail: "Follow the mandated approval flow - seek prior approvals per OBPP before publishing.",
			},
			"undertakings_provided": {
				Pass: "Required undertakings are included.",
				Fail: "Add required undertakings and declarations from the responsible signatory.",
			},
			"exemptions_applied_correctly": {
				Pass: "Any exemptions are clearly documented and justified.",
				Fail: "Document any claimed exemptions and ensure they are valid under the OBPP rules.",
			},
			"quarterly_upload_done": {
				Pass: "Quarterly uploads / records are maintained as required.",
				Fail: "Ensure the campaign is recorded/uploaded in the quarterly compliance registry.",
			},
			"no_games_or_prizes": {
				Pass: "No games or prizes included (or approvals exist).",
				Fail: "Remove contests/games/prize mechanics unless specifically allowed and approved.",
			},
			"retention_5y": {
				Pass: "Retention policy (5 years) is adhered to / documented.",
				Fail: "Retain campaign artifacts for 5 years per OBPP; document retention location.",
			},
			"reapprovals_after_180d": {
				Pass: "Re-approval workflow adhered after 180 days where required.",
				Fail: "If >180 days since approval, re-seek approvals per policy.",
			},
			"medium_changes_ok": {
				Pass: "Medium-specific change rules respected (minor edits vs. re-approval).",
				Fail: "Major changes to creative/medium may require fresh approvals - confirm and re-submit if needed.",
			},
			"suspension_rules_followed": {
				Pass: "Suspension/withdrawal requirements followed where applicable.",
				Fail: "Follow the suspension/withdrawal procedures if content is non-compliant post-deployment.",
			},
			"third_party_action_compliant": {
				Pass: "Third-party vendor/agency actions are compliant and documented.",
				Fail: "Obtain compliance confirmations from third-party vendors/agencies and document them.",
			},
			"no_client_data_sharing": {
				Pass: "No unauthorized client data sharing detected.",
				Fail: "Remove or secure any flow that shares client data with third parties; follow privacy rules.",
			},
			"liabilities_disclaimed": {
				Pass: "Liability/disclaimer language present and adequate.",
				Fail: "Add clear liability and disclaimer statements as per OBPP templates.",
			},
			"penalty_awareness": {
				Pass: "Penalty provisions acknowledged and internal controls exist.",
				Fail: "Ensure the team documents penalty awareness and internal controls to avoid breaches.",
			},
		},
	}
}
