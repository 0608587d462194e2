// Package cursor provides types, interfaces, and helpers for working with
// the Cursor background-agents REST API.
//
// # Overview
//
// The cursor package defines the domain types (Agent, Source, Target,
// Conversation, and the demo Cursor resource used by the API documentation
// tooling) and the interfaces for resource-oriented clients (AgentsClient,
// CursorsClient). A concrete implementation of these clients is provided by
// the cursorclient package, which wires configuration, transport, and
// authentication. Most consumers should import cursorclient to construct a
// client and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/jabrena/cursor-agents-go/pkg/cursor"
//	  "github.com/jabrena/cursor-agents-go/pkg/cursorclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := cursorclient.NewWithAPIKey("key_...")
//	  if err != nil { log.Fatal(err) }
//
//	  agents, err := cli.Agents().List(ctx, cursor.NewListParams().WithLimit(20))
//	  if err != nil { log.Fatal(err) }
//	  _ = agents
//	}
//
// # Outcome facade
//
// AgentManagement and AgentInformation wrap an AgentsClient behind the
// outcome.Outcome container: every operation returns an Outcome instead of
// an (T, error) pair, so callers can compose launch/status/follow-up
// pipelines with Map, FlatMap, and Fold, and collapse the whole pipeline at
// the program boundary.
//
// # Errors
//
// API errors are represented by APIError and ResponseError. Helpers such as
// IsNotFound, IsUnauthorized, and IsRateLimited make it easy to branch on
// common error cases.
//
// # Interceptors, caching, and batching
//
// The package includes generic building blocks: request/response
// interceptors (logging, auth headers, request IDs, metrics), a pluggable
// Cache abstraction with memory and NATS JetStream KV backends, and a
// concurrent BatchExecutor for bulk agent operations.
package cursor
