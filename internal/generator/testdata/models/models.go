package models

import "time"

type audit struct {
	CreatedAt time.Time `db:"createdAt"`
	UpdatedAt time.Time `db:"updatedAt"`
}

type Customer struct {
	audit
	Id        int64     `db:"id,pk"`
	Name      string    `db:"name"`
	Secret    string    `db:"-"`
	Orders    []*Order  `db:"orders,one-to-many"`
	Phones    []string  `db:"phones,element-collection"`
	Addresses []Address `db:"addresses,element-collection"`
	note      string
}

type Order struct {
	Id       int64     `db:"id,pk"`
	Customer *Customer `db:"customer,many-to-one"`
	Total    float64
}

// Address has no mapped fields and is only embedded in collections.
type Address struct {
	Street string
	City   string
}

type Status int

type Page[T any] struct {
	Items []T `db:"items"`
}
