package services

import (
	"log"
	"strconv"

	"checkitoff/global"
	"checkitoff/models"

	"github.com/go-redis/redis"
)

const voteRankKey = "rank:news:votes"

func tallyKey(newsID uint) string {
	return "news:" + strconv.FormatUint(uint64(newsID), 10) + ":tally"
}

// BumpVoteCache refreshes the per-article tally hash and bumps the most-voted
// ranking. Best effort: the cache is rebuilt from the database on the next
// vote, so failures are only logged.
func BumpVoteCache(newsID uint, tally Tally) {
	if global.RedisDB == nil {
		return
	}

	member := strconv.FormatUint(uint64(newsID), 10)

	pipe := global.RedisDB.TxPipeline()
	pipe.HMSet(tallyKey(newsID), map[string]interface{}{
		"upVotes":   tally.UpVotes,
		"downVotes": tally.DownVotes,
		"comments":  tally.Comments,
		"status":    tally.Status,
	})
	pipe.ZIncrBy(voteRankKey, 1, member)
	if _, err := pipe.Exec(); err != nil {
		log.Printf("vote cache update failed for news %d: %v", newsID, err)
	}
}

// TopNewsEntry is one row of the most-voted ranking.
type TopNewsEntry struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Votes int64  `json:"votes"`
	Rank  int    `json:"rank"`
}

// TopNews returns the n most-voted articles from the Redis ranking, filling
// in titles from the database where the article still exists.
func TopNews(n int) ([]TopNewsEntry, error) {
	if n <= 0 {
		n = 10
	}
	if global.RedisDB == nil {
		return []TopNewsEntry{}, nil
	}

	zres, err := global.RedisDB.ZRevRangeWithScores(voteRankKey, 0, int64(n-1)).Result()
	if err != nil {
		if err == redis.Nil {
			return []TopNewsEntry{}, nil
		}
		return nil, err
	}

	list := make([]TopNewsEntry, 0, len(zres))
	for idx, z := range zres {
		member, _ := z.Member.(string)
		entry := TopNewsEntry{ID: member, Votes: int64(z.Score), Rank: idx + 1}
		var news models.News
		if err := global.Db.First(&news, member).Error; err == nil {
			entry.Title = news.Title
		}
		list = append(list, entry)
	}
	return list, nil
}
