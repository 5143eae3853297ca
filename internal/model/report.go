package model

import "time"

// Solution holds the answers to both parts of a puzzle.
type Solution struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// Report is the persisted result of solving a puzzle for one input.
type Report struct {
	Day       Day           `yaml:"day"`
	Title     string        `yaml:"title"`
	Input     Path          `yaml:"input"`
	InputHash string        `yaml:"input_hash"`
	Solution  Solution      `yaml:"solution"`
	SolvedAt  time.Time     `yaml:"solved_at"`
	Duration  time.Duration `yaml:"duration"`
}
