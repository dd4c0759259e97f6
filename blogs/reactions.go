package blogs

import (
	"net/http"
	"slices"
	"time"

	"emporia/db"
	"emporia/globals"
	"emporia/models"
	"emporia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReactionUpdate describes the set changes for one like/dislike toggle.
type ReactionUpdate struct {
	AddLike       bool
	RemoveLike    bool
	AddDislike    bool
	RemoveDislike bool
}

// React computes the set changes for a user toggling like (or dislike) on a
// blog. Liking removes any standing dislike and vice versa; repeating the
// same reaction withdraws it.
func React(likes, dislikes []string, userID string, like bool) ReactionUpdate {
	hasLike := slices.Contains(likes, userID)
	hasDislike := slices.Contains(dislikes, userID)

	var u ReactionUpdate
	if like {
		u.RemoveDislike = hasDislike
		if hasLike {
			u.RemoveLike = true
		} else {
			u.AddLike = true
		}
	} else {
		u.RemoveLike = hasLike
		if hasDislike {
			u.RemoveDislike = true
		} else {
			u.AddDislike = true
		}
	}
	return u
}

func LikeBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reactHandler(w, r, ps.ByName("id"), true)
}

func DislikeBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reactHandler(w, r, ps.ByName("id"), false)
}

func reactHandler(w http.ResponseWriter, r *http.Request, blogID string, like bool) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if !utils.ValidateID(blogID) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	var blog models.Blog
	err := db.BlogCollection.FindOne(r.Context(), bson.M{"blogId": blogID}).Decode(&blog)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}

	u := React(blog.Likes, blog.Dislikes, userID, like)

	pull := bson.M{}
	addToSet := bson.M{}
	if u.RemoveLike {
		pull["likes"] = userID
	}
	if u.RemoveDislike {
		pull["dislikes"] = userID
	}
	if u.AddLike {
		addToSet["likes"] = userID
	}
	if u.AddDislike {
		addToSet["dislikes"] = userID
	}

	update := bson.M{"$set": bson.M{"updatedAt": time.Now()}}
	if len(pull) > 0 {
		update["$pull"] = pull
	}
	if len(addToSet) > 0 {
		update["$addToSet"] = addToSet
	}

	err = db.BlogCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"blogId": blogID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&blog)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update reaction")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, viewFor(blog, userID))
}
