package storage

import (
	"context"
	"fmt"

	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	mongoDatabase   = "rjm"
	mongoCollection = "slots"
)

// Mongo persists slots as {_id, value} documents. It dials a fresh
// session per operation, which keeps the backend usable from a
// short-lived CLI process without connection management.
type Mongo struct {
	host string
}

func NewMongo(host string) *Mongo {
	return &Mongo{host: host}
}

type mongoSlot struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

func (m *Mongo) withCollection(fn func(c *mgo.Collection) error) error {
	session, err := mgo.Dial(m.host)
	if err != nil {
		return fmt.Errorf("dial mongo: %w", err)
	}
	defer session.Close()
	session.SetMode(mgo.Monotonic, true)
	return fn(session.DB(mongoDatabase).C(mongoCollection))
}

func (m *Mongo) Get(_ context.Context, key string) (string, bool, error) {
	var doc mongoSlot
	err := m.withCollection(func(c *mgo.Collection) error {
		return c.FindId(key).One(&doc)
	})
	if err == mgo.ErrNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Value, true, nil
}

func (m *Mongo) Set(_ context.Context, key, value string) error {
	return m.withCollection(func(c *mgo.Collection) error {
		_, err := c.UpsertId(key, bson.M{"$set": bson.M{"value": value}})
		return err
	})
}

func (m *Mongo) Delete(_ context.Context, key string) error {
	err := m.withCollection(func(c *mgo.Collection) error {
		return c.RemoveId(key)
	})
	if err == mgo.ErrNotFound {
		return nil
	}
	return err
}

func (m *Mongo) Clear(_ context.Context) error {
	return m.withCollection(func(c *mgo.Collection) error {
		_, err := c.RemoveAll(nil)
		return err
	})
}
