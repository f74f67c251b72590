package card

import (
	"fmt"
	"strconv"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

// 花色顺序即手牌展示的分组顺序
const (
	Club Suit = iota // 梅花
	Diamond          // 方块
	Spade            // 黑桃
	Heart            // 红心
)

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

// Card 定义一张牌
type Card struct {
	Suit Suit
	Rank Rank
}

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Club:    "♣",
	Diamond: "♦",
	Spade:   "♠",
	Heart:   "♥",
}

// suitChars 花色的线上编码字符
var suitChars = map[Suit]byte{
	Club:    'C',
	Diamond: 'D',
	Spade:   'S',
	Heart:   'H',
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
	RankA:  "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// charToRank 用于快速查找字符对应的 Rank
var charToRank = map[byte]Rank{
	'2': Rank2,
	'3': Rank3,
	'4': Rank4,
	'5': Rank5,
	'6': Rank6,
	'7': Rank7,
	'8': Rank8,
	'9': Rank9,
	'T': Rank10,
	'J': RankJ,
	'Q': RankQ,
	'K': RankK,
	'A': RankA,
}

// charToSuit 用于快速查找字符对应的 Suit
var charToSuit = map[byte]Suit{
	'C': Club,
	'D': Diamond,
	'S': Spade,
	'H': Heart,
}

// rankChars 点数的线上编码字符
var rankChars = map[Rank]byte{
	Rank2:  '2',
	Rank3:  '3',
	Rank4:  '4',
	Rank5:  '5',
	Rank6:  '6',
	Rank7:  '7',
	Rank8:  '8',
	Rank9:  '9',
	Rank10: 'T',
	RankJ:  'J',
	RankQ:  'Q',
	RankK:  'K',
	RankA:  'A',
}

// QueenOfSpades 黑桃Q，单独计 13 分
var QueenOfSpades = Card{Suit: Spade, Rank: RankQ}

// TwoOfClubs 梅花2，每轮首墩必须由持有者先出
var TwoOfClubs = Card{Suit: Club, Rank: Rank2}

// Points 返回这张牌的分值：红心 1 分，黑桃Q 13 分，其余 0 分
func (c Card) Points() int {
	if c.Suit == Heart {
		return 1
	}
	if c == QueenOfSpades {
		return 13
	}
	return 0
}

// IsPoint 判断是否是分牌
func (c Card) IsPoint() bool {
	return c.Points() > 0
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Code 返回两字符线上编码，如 "QS"、"TH"
func (c Card) Code() string {
	return string([]byte{rankChars[c.Rank], suitChars[c.Suit]})
}

// FromCode 从线上编码解析一张牌
func FromCode(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("无法识别的牌: %q", code)
	}
	rank, ok := charToRank[code[0]]
	if !ok {
		return Card{}, fmt.Errorf("无法识别的点数: %c", code[0])
	}
	suit, ok := charToSuit[code[1]]
	if !ok {
		return Card{}, fmt.Errorf("无法识别的花色: %c", code[1])
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// Codes 批量编码
func Codes(cards []Card) []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return codes
}

// FromCodes 批量解析，任意一张无法识别则整体失败
func FromCodes(codes []string) ([]Card, error) {
	cards := make([]Card, len(codes))
	for i, code := range codes {
		c, err := FromCode(code)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}
