package repository

import "go.mongodb.org/mongo-driver/bson"

// newestFirst orders by creation time, latest on top.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}}
