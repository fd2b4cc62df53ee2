package config

// ColumnSets names the sheet columns each presentation cares about. The
// defaults match the canonical static-analysis sheet; a YAML config file can
// redefine them for sheets that use different headers.
type ColumnSets struct {
	// AppLabel is the column holding the application name used for chart
	// axis labels.
	AppLabel string `yaml:"app_label"`
	// Category is the grouping column for the per-category median chart.
	Category string `yaml:"category"`
	// YesNo lists the permission-flag columns holding "Yes"/"No" strings.
	YesNo []string `yaml:"yes_no"`
	// Gradient lists the numeric columns that get a color gradient in the
	// styled HTML table.
	Gradient []string `yaml:"gradient"`
	// Scores lists the 0-5 score columns aggregated by the chart
	// generators. Order matters: the first score column drives the
	// category-chart sort.
	Scores []string `yaml:"scores"`
}

// DefaultColumnSets returns the column names of the canonical sheet.
func DefaultColumnSets() ColumnSets {
	return ColumnSets{
		AppLabel: "App_Name",
		Category: "Category",
		YesNo: []string{
			"Uses_Precise_Location",
			"Uses_Background_Location",
			"Uses_Camera",
			"Uses_Contacts",
			"Uses_Phone_State",
			"Uses_Storage",
			"Uses_System_Alert_Window",
		},
		Gradient: []string{
			"Nb_Trackers",
			"Nb_Permissions",
			"Nb_Dangerous_Permissions",
			"Permission_Risk_Score_0to5",
			"Tracker_Intensity_Score_0to5",
			"Transparency_Score_0to5",
			"Retention_Clarity_Score_0to5",
		},
		Scores: []string{
			"Permission_Risk_Score_0to5",
			"Tracker_Intensity_Score_0to5",
			"Transparency_Score_0to5",
			"Retention_Clarity_Score_0to5",
		},
	}
}

// fillLabels backfills the label columns when a config file redefined the
// column lists but left the labels out.
func (c *ColumnSets) fillLabels() {
	if c.AppLabel == "" {
		c.AppLabel = "App_Name"
	}
	if c.Category == "" {
		c.Category = "Category"
	}
}
