// Package rankmerge merges two rankings with ties into one consensus ranking.
//
// 🚀 What is rankmerge?
//
//	A small, deterministic library plus CLI and HTTP daemon that:
//		• keeps every order both rankings agree on
//		• ties every pair of objects the rankings strictly disagree on
//		• closes ties transitively and orders the resulting clusters
//
// ✨ How does a merge work?
//
//	Two rankings become dominance matrices over one shared object index.
//	Their conjunction, with contradicting pairs forced mutual, is the consensus
//	relation. Mutual dominance closed under Warshall yields tie-clusters, and
//	Kahn's algorithm orders them with a (smallest member, size) tie-break.
//
// Under the hood, everything is organized in flat subpackages:
//
//	ranking/   - Ranking, Level, ObjectID, the shared object Index
//	matrix/    - square boolean relations: And, Transpose, Closure, validators
//	consensus/ - the merge pipeline stages and Merge itself
//	codec/     - loose JSON and YAML encodings of rankings
//	config/    - YAML/TOML config files, .env and RANKMERGE_* overrides
//	metrics/   - Prometheus collectors
//	service/   - parse, merge and report; batch fan-out
//	server/    - gin HTTP transport
//	cmd/       - rankmerge (CLI) and rankmerged (daemon)
//
// Quick start:
//
//	go run ./cmd/rankmerge '[1, 2, 3]' '[1, 3, 2]'
//	[1,[2,3]]
package rankmerge
