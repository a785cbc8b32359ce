// Package order contains the production order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root carrying business key, article, quantities and time window
//   - Status and StateInfo: the closed set of lifecycle states with their display attributes
//   - StateMachine: the table of allowed transitions and the Closed timestamping rule
//   - Priority and BusinessKey: value objects used for ranking and identification
//
// Key business rules:
//   - New orders start Issued, with Normal priority and nothing produced
//   - Closed orders use their actual end as the authoritative end, all others the expected end
//   - Entering Closed stamps the actual end once; leaving Closed keeps it
//   - Produced quantity may exceed the ordered quantity
package order
