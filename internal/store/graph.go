package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanshika/finsight/backend/internal/domain"
	"github.com/vanshika/finsight/backend/internal/graph"
)

// Graph persists profiles and records as nodes hanging off a User node:
// (:User)-[:HAS_PROFILE]->(:Profile) and (:User)-[:RECORDED]->(:FinanceRecord).
type Graph struct {
	client graph.Client
}

// NewGraph instantiates a Graph store backed by the supplied client.
func NewGraph(client graph.Client) *Graph {
	return &Graph{client: client}
}

// SaveProfile replaces the user's profile document. createdAt is written only
// when the profile node is created and survives every later write.
func (g *Graph) SaveProfile(ctx context.Context, userID string, p domain.Profile) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	doc := newProfileDocument(userID, p)

	_, err := g.client.Write(ctx, graph.Statement{
		Cypher: saveProfileCypher,
		Params: map[string]any{
			"userId":    userID,
			"props":     doc.properties(),
			"createdAt": formatTime(doc.CreatedAt),
		},
	})
	if err != nil {
		return unavailable(fmt.Sprintf("save profile %s", userID), err)
	}
	return nil
}

func (g *Graph) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	res, err := g.client.Read(ctx, graph.Statement{
		Cypher: getProfileCypher,
		Params: map[string]any{"userId": userID},
	})
	if err != nil {
		return domain.Profile{}, unavailable(fmt.Sprintf("get profile %s", userID), err)
	}

	rec, ok := res.First()
	if !ok {
		return domain.Profile{}, domain.ErrNotFound
	}
	props, err := rec.Map("profile")
	if err != nil {
		return domain.Profile{}, fmt.Errorf("decode profile %s: %w", userID, err)
	}
	return profileFromProperties(props), nil
}

func (g *Graph) DeleteProfile(ctx context.Context, userID string) error {
	_, err := g.client.Write(ctx, graph.Statement{
		Cypher: deleteProfileCypher,
		Params: map[string]any{"userId": userID},
	})
	if err != nil {
		return unavailable(fmt.Sprintf("delete profile %s", userID), err)
	}
	return nil
}

func (g *Graph) SaveRecord(ctx context.Context, r domain.FinanceRecord) error {
	if r.ID == "" || r.UserID == "" {
		return errors.New("record id and user id are required")
	}
	_, err := g.client.Write(ctx, graph.Statement{
		Cypher: saveRecordCypher,
		Params: map[string]any{
			"userId":   r.UserID,
			"recordId": r.ID,
			"props":    newRecordDocument(r).properties(),
		},
	})
	if err != nil {
		return unavailable(fmt.Sprintf("save record %s", r.ID), err)
	}
	return nil
}

func (g *Graph) GetRecord(ctx context.Context, id string) (domain.FinanceRecord, error) {
	res, err := g.client.Read(ctx, graph.Statement{
		Cypher: getRecordCypher,
		Params: map[string]any{"recordId": id},
	})
	if err != nil {
		return domain.FinanceRecord{}, unavailable(fmt.Sprintf("get record %s", id), err)
	}

	rec, ok := res.First()
	if !ok {
		return domain.FinanceRecord{}, domain.ErrNotFound
	}
	props, err := rec.Map("record")
	if err != nil {
		return domain.FinanceRecord{}, fmt.Errorf("decode record %s: %w", id, err)
	}
	return recordFromProperties(props)
}

func (g *Graph) ListRecords(ctx context.Context, userID string, filter RecordFilter) ([]domain.FinanceRecord, error) {
	res, err := g.client.Read(ctx, graph.Statement{
		Cypher: listRecordsCypher,
		Params: map[string]any{
			"userId": userID,
			"type":   string(filter.Type),
			"limit":  int64(filter.limit()),
		},
	})
	if err != nil {
		return nil, unavailable(fmt.Sprintf("list records of %s", userID), err)
	}

	records := make([]domain.FinanceRecord, 0, len(res.Records))
	for _, rec := range res.Records {
		props, err := rec.Map("record")
		if err != nil {
			return nil, fmt.Errorf("decode records of %s: %w", userID, err)
		}
		r, err := recordFromProperties(props)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func (g *Graph) DeleteRecord(ctx context.Context, id string) error {
	_, err := g.client.Write(ctx, graph.Statement{
		Cypher: deleteRecordCypher,
		Params: map[string]any{"recordId": id},
	})
	if err != nil {
		return unavailable(fmt.Sprintf("delete record %s", id), err)
	}
	return nil
}

func (g *Graph) Ping(ctx context.Context) error {
	return g.client.VerifyConnectivity(ctx)
}

func (g *Graph) Close(ctx context.Context) error {
	return g.client.Close(ctx)
}

const saveProfileCypher = `
MERGE (u:User {userId: $userId})
MERGE (u)-[:HAS_PROFILE]->(p:Profile)
WITH p, coalesce(p.createdAt, $createdAt) AS createdAt
SET p = $props
SET p.createdAt = createdAt
RETURN p.createdAt AS createdAt
`

const getProfileCypher = `
MATCH (:User {userId: $userId})-[:HAS_PROFILE]->(p:Profile)
RETURN p {.*} AS profile
LIMIT 1
`

const deleteProfileCypher = `
MATCH (:User {userId: $userId})-[:HAS_PROFILE]->(p:Profile)
DETACH DELETE p
`

const saveRecordCypher = `
MERGE (u:User {userId: $userId})
MERGE (r:FinanceRecord {recordId: $recordId})
SET r = $props
MERGE (u)-[:RECORDED]->(r)
RETURN r.recordId AS recordId
`

const getRecordCypher = `
MATCH (r:FinanceRecord {recordId: $recordId})
RETURN r {.*} AS record
`

const listRecordsCypher = `
MATCH (:User {userId: $userId})-[:RECORDED]->(r:FinanceRecord)
WHERE $type = '' OR r.transactionType = $type
RETURN r {.*} AS record
ORDER BY r.date DESC, r.recordId ASC
LIMIT $limit
`

const deleteRecordCypher = `
MATCH (r:FinanceRecord {recordId: $recordId})
DETACH DELETE r
`
