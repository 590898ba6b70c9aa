// Copyright (C) 2026 The GovGoose Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dtos

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

var ErrNoAnalysis = errors.New("no analysis stored")

// Citation is returned by the analysis backend either as a plain string or as an object.
type Citation struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
	Page   int    `json:"page,omitempty"`
}

func (c *Citation) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.Text)
	}

	type citation Citation
	var tmp citation
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*c = Citation(tmp)
	return nil
}

type Answer struct {
	Question       string     `json:"question"`
	ShortAnswer    string     `json:"short_answer"`
	DetailedAnswer string     `json:"detailed_answer"`
	Citations      []Citation `json:"citations"`
}

// DisplayAnswer prefers the short answer and falls back to the detailed one.
func (a Answer) DisplayAnswer() string {
	if a.ShortAnswer != "" {
		return a.ShortAnswer
	}
	return a.DetailedAnswer
}

type Analysis struct {
	Answers    []Answer   `json:"answers"`
	AnalyzedAt *time.Time `json:"analyzedAt,omitempty"`
}

type AnalyzeRequest struct {
	CustomQuestions []string `json:"customQuestions"`
}

type AnswerQuestionsRequest struct {
	Address   string   `json:"address"`
	Zone      string   `json:"zone"`
	Questions []string `json:"questions"`
}

// ParseAnalysis reads a stored detail blob. It accepts the wrapped object form,
// a bare answer array, the legacy "results" key and a json string containing any of those.
func ParseAnalysis(raw []byte) (Analysis, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Analysis{}, ErrNoAnalysis
	}

	switch raw[0] {
	case '"':
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return Analysis{}, err
		}
		return ParseAnalysis([]byte(inner))
	case '[':
		var answers []Answer
		if err := json.Unmarshal(raw, &answers); err != nil {
			return Analysis{}, err
		}
		if len(answers) == 0 {
			return Analysis{}, ErrNoAnalysis
		}
		return Analysis{Answers: answers}, nil
	}

	var obj struct {
		Answers    []Answer   `json:"answers"`
		Results    []Answer   `json:"results"`
		AnalyzedAt *time.Time `json:"analyzedAt"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Analysis{}, err
	}

	answers := obj.Answers
	if len(answers) == 0 {
		answers = obj.Results
	}
	if len(answers) == 0 {
		return Analysis{}, ErrNoAnalysis
	}
	return Analysis{Answers: answers, AnalyzedAt: obj.AnalyzedAt}, nil
}
