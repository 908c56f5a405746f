package main

import (
	"github.com/etnz/portal"
	"github.com/etnz/portal/docs"
	"github.com/etnz/portal/renderer"
	"github.com/etnz/portal/storage"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
// Install it with: COMP_INSTALL=1 studentportal
func completion() *complete.Command {
	themes := make(predict.Set, 0, len(portal.Themes))
	for _, t := range portal.Themes {
		themes = append(themes, string(t))
	}
	years := make(predict.Set, 0, len(portal.YearLevels))
	for _, y := range portal.YearLevels {
		years = append(years, string(y))
	}
	topics, _ := docs.GetAllTopics()
	credentials := map[string]complete.Predictor{
		"u": predict.Something,
		"p": predict.Something,
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"store":   predict.Files("*"),
			"backend": predict.Set{storage.BackendBolt, storage.BackendDir},
			"v":       predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"signup": {Flags: map[string]complete.Predictor{
				"name":    predict.Something,
				"n":       predict.Something,
				"course":  predict.Set(portal.Courses),
				"year":    years,
				"email":   predict.Something,
				"p":       predict.Something,
				"confirm": predict.Something,
			}},
			"login": {Flags: credentials},
			"show": {
				Flags: map[string]complete.Predictor{
					"u":    predict.Something,
					"p":    predict.Something,
					"html": predict.Files("*.html"),
				},
				Args: predict.Set(renderer.Sections),
			},
			"tui":   {},
			"theme": {Flags: map[string]complete.Predictor{"next": predict.Nothing}, Args: themes},
			"fmt":   {},
			"query": {Args: predict.Something},
			"reset": {Flags: map[string]complete.Predictor{"force": predict.Nothing}},
			"topic": {Flags: map[string]complete.Predictor{"raw": predict.Nothing}, Args: predict.Set(topics)},
			"help":  {},
		},
	}
}
